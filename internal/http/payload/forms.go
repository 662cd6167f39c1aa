package payload

import (
	"surveyapp/internal/core"

	"github.com/jellydator/validation"
)

// FormRequest only requires name to be present; a blank name is a domain error.
type FormRequest struct {
	Author      string  `json:"author"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (f FormRequest) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Author, validation.Required),
		validation.Field(&f.Name, validation.NotNil),
	)
}

func (f FormRequest) ToCoreFormMessage() core.FormMessage {
	msg := core.FormMessage{
		Author:      f.Author,
		Description: f.Description,
	}
	if f.Name != nil {
		msg.Name = *f.Name
	}

	return msg
}

// QuestionRequest accepts answers for older clients; they are never stored.
type QuestionRequest struct {
	Username        string   `json:"username"`
	FormID          *string  `json:"form_id"`
	Name            string   `json:"name"`
	TypeOfInput     string   `json:"type_of_input"`
	PossibleAnswers []string `json:"possible_answers"`
	Answers         []string `json:"answers"`
}

func (q QuestionRequest) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.FormID, validation.NotNil),
		validation.Field(&q.Name, validation.Required),
		validation.Field(&q.TypeOfInput, validation.In(core.InputCheckbox, core.InputRadio, core.InputText)),
		validation.Field(&q.PossibleAnswers, validation.Each(validation.Required)),
	)
}

func (q QuestionRequest) ToCoreQuestionMessage() core.QuestionMessage {
	msg := core.QuestionMessage{
		Name:            q.Name,
		TypeOfInput:     q.TypeOfInput,
		PossibleAnswers: q.PossibleAnswers,
	}
	if q.FormID != nil {
		msg.FormID = *q.FormID
	}

	return msg
}
