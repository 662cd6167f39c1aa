package repository

import (
	"context"
	"errors"
	"fmt"
	"surveyapp/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrFormNotFound error = errors.New("form not found")
var ErrDuplicateUsername error = errors.New("username already exists")
var ErrDuplicateQuestion error = errors.New("question already exists")

// formPreloads load questions and their answers in the order they were added.
var formPreloads = []db.Preload{
	{Association: "Questions", OrderBy: "seq"},
	{Association: "Questions.Answers", OrderBy: "seq"},
}

// SurveyRepository keeps users, forms, questions and answers in a relational store.
// Questions and answers are separate rows, so adding either is a single insert
// and concurrent writers never overwrite each other.
type SurveyRepository struct {
	db Storage
}

func NewSurveyRepository(db Storage) *SurveyRepository {
	return &SurveyRepository{
		db: db,
	}
}

func (r *SurveyRepository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Form{}, &Question{}, &Answer{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *SurveyRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *SurveyRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *SurveyRepository) GetUser(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *SurveyRepository) CreateForm(ctx context.Context, form Form) error {
	err := r.db.Create(ctx, &form)
	if err != nil {
		return fmt.Errorf("create form: %w", err)
	}

	return nil
}

func (r *SurveyRepository) GetForm(ctx context.Context, formID string) (Form, error) {
	var form Form

	err := r.db.GetOneBy(ctx, "id", formID, &form, formPreloads...)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Form{}, ErrFormNotFound
		}
		return Form{}, fmt.Errorf("get form by id: %w", err)
	}

	return form, nil
}

func (r *SurveyRepository) GetFormsByAuthor(ctx context.Context, author string) ([]Form, error) {
	forms := []Form{}

	err := r.db.GetAllBy(ctx, "author", author, &forms, formPreloads...)
	if err != nil {
		return forms, fmt.Errorf("get forms by author: %w", err)
	}

	return forms, nil
}

// AddQuestion appends question to the form. The (form, name) unique index
// rejects a second question with the same name, including one added concurrently.
func (r *SurveyRepository) AddQuestion(ctx context.Context, formID string, question Question) error {
	var form Form
	err := r.db.GetOneBy(ctx, "id", formID, &form)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrFormNotFound
		}
		return fmt.Errorf("get form by id: %w", err)
	}

	question.FormID = formID
	question.Answers = nil

	err = r.db.Create(ctx, &question)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateQuestion
		}
		return fmt.Errorf("create question: %w", err)
	}

	return nil
}

// AddAnswers appends all answers in one statement. Answers reference questions
// by id, which the caller resolved from the form.
func (r *SurveyRepository) AddAnswers(ctx context.Context, formID string, answers []Answer) error {
	if len(answers) == 0 {
		return nil
	}

	err := r.db.Create(ctx, &answers)
	if err != nil {
		return fmt.Errorf("save answers for form %q: %w", formID, err)
	}

	return nil
}
