package docstore

import (
	"surveyapp/internal/repository"
	"time"
)

type userDocument struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

// formDocument embeds its questions and their answers.
type formDocument struct {
	ID          string             `bson:"_id"`
	Author      string             `bson:"author"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Questions   []questionDocument `bson:"questions"`
	CreatedAt   time.Time          `bson:"created_at"`
}

type questionDocument struct {
	ID              string    `bson:"id"`
	Name            string    `bson:"name"`
	TypeOfInput     string    `bson:"type_of_input"`
	PossibleAnswers []string  `bson:"possible_answers"`
	Answers         []string  `bson:"answers"`
	CreatedAt       time.Time `bson:"created_at"`
}

func newUserDocument(u repository.User) userDocument {
	return userDocument{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func (d userDocument) record() repository.User {
	return repository.User{
		ID:           d.ID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

func newFormDocument(f repository.Form) formDocument {
	doc := formDocument{
		ID:          f.ID,
		Author:      f.Author,
		Name:        f.Name,
		Description: f.Description,
		Questions:   make([]questionDocument, 0, len(f.Questions)),
		CreatedAt:   f.CreatedAt,
	}
	for _, q := range f.Questions {
		doc.Questions = append(doc.Questions, newQuestionDocument(q))
	}

	return doc
}

func (d formDocument) record() repository.Form {
	form := repository.Form{
		ID:          d.ID,
		Author:      d.Author,
		Name:        d.Name,
		Description: d.Description,
		Questions:   make([]repository.Question, 0, len(d.Questions)),
		CreatedAt:   d.CreatedAt,
	}

	for _, q := range d.Questions {
		question := repository.Question{
			ID:              q.ID,
			FormID:          d.ID,
			Name:            q.Name,
			TypeOfInput:     q.TypeOfInput,
			PossibleAnswers: q.PossibleAnswers,
			Answers:         make([]repository.Answer, 0, len(q.Answers)),
			CreatedAt:       q.CreatedAt,
		}
		if question.PossibleAnswers == nil {
			question.PossibleAnswers = []string{}
		}
		for _, value := range q.Answers {
			question.Answers = append(question.Answers, repository.Answer{QuestionID: q.ID, Value: value})
		}
		form.Questions = append(form.Questions, question)
	}

	return form
}

// newQuestionDocument always starts with no answers.
func newQuestionDocument(q repository.Question) questionDocument {
	possible := []string(q.PossibleAnswers)
	if possible == nil {
		possible = []string{}
	}

	return questionDocument{
		ID:              q.ID,
		Name:            q.Name,
		TypeOfInput:     q.TypeOfInput,
		PossibleAnswers: possible,
		Answers:         []string{},
		CreatedAt:       q.CreatedAt,
	}
}
