package handler

import (
	"context"
	"net/http"
	"surveyapp/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SurveyService . SurveyService
type SurveyService interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, msg core.Credentials) (core.User, error)
	Login(ctx context.Context, msg core.Credentials) error
	CreateForm(ctx context.Context, msg core.FormMessage) (core.Form, error)
	ListFormsByAuthor(ctx context.Context, username string) ([]core.Form, error)
	FindForm(ctx context.Context, formID string) (core.Form, error)
	AddQuestion(ctx context.Context, msg core.QuestionMessage) (core.Form, error)
	SubmitAnswers(ctx context.Context, formID string, entries []core.AnswerMessage) (core.Form, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
