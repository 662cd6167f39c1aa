package core

import (
	"context"
	"surveyapp/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	Ping(ctx context.Context) error
	CreateUser(ctx context.Context, user repository.User) error
	GetUser(ctx context.Context, username string) (repository.User, error)
	CreateForm(ctx context.Context, form repository.Form) error
	GetForm(ctx context.Context, formID string) (repository.Form, error)
	GetFormsByAuthor(ctx context.Context, author string) ([]repository.Form, error)
	AddQuestion(ctx context.Context, formID string, question repository.Question) error
	AddAnswers(ctx context.Context, formID string, answers []repository.Answer) error
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) error
}
