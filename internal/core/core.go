package core

import (
	"context"
	"errors"
	"fmt"
	"surveyapp/internal/repository"
	"surveyapp/pkg/password"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrDuplicateUsername error = errors.New("username already exists")
var ErrUserNotFound error = errors.New("user not found")
var ErrCredentialMismatch error = errors.New("credential mismatch")
var ErrBlankName error = errors.New("blank name")
var ErrBlankFormID error = errors.New("blank form id")
var ErrFormNotFound error = errors.New("form not found")
var ErrDuplicateQuestion error = errors.New("question already exists")
var ErrEmptyAnswerSet error = errors.New("empty answer set")
var ErrMalformedAnswer error = errors.New("malformed answer")
var ErrNoQuestionsDefined error = errors.New("no questions defined")
var ErrQuestionNotFound error = errors.New("question not found")
var ErrStoreUnavailable error = errors.New("store unavailable")

// SurveyService holds the survey business rules on top of a Repository.
type SurveyService struct {
	logs            *zap.SugaredLogger
	repo            Repository
	hasher          PasswordHasher
	firstAnswerOnly bool
	newID           func() string
	now             func() time.Time
}

type Option func(*SurveyService)

// WithFirstAnswerOnly makes SubmitAnswers record only the first entry of a batch.
func WithFirstAnswerOnly(enabled bool) Option {
	return func(s *SurveyService) {
		s.firstAnswerOnly = enabled
	}
}

// WithIDGenerator replaces the uuid generator used for new users, forms and questions.
func WithIDGenerator(gen func() string) Option {
	return func(s *SurveyService) {
		s.newID = gen
	}
}

func NewSurveyService(logger *zap.SugaredLogger, repo Repository, hasher PasswordHasher, opts ...Option) *SurveyService {
	s := &SurveyService{
		logs:   logger,
		repo:   repo,
		hasher: hasher,
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ping reports whether the backing store answers.
func (s *SurveyService) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return unavailable("ping store", err)
	}
	return nil
}

// Register creates a user with a hashed password. Usernames are unique and case sensitive.
func (s *SurveyService) Register(ctx context.Context, msg Credentials) (User, error) {
	_, err := s.repo.GetUser(ctx, msg.Username)
	if err == nil {
		return User{}, ErrDuplicateUsername
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return User{}, unavailable("get user", err)
	}

	hash, err := s.hasher.Hash(msg.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	record := repository.User{
		ID:           s.newID(),
		Username:     msg.Username,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	err = s.repo.CreateUser(ctx, record)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return User{}, ErrDuplicateUsername
		}
		return User{}, unavailable("create user", err)
	}

	s.logs.Infow("user registered", "user_id", record.ID, "username", record.Username)

	return toUser(record), nil
}

// Login checks the password of an existing user.
func (s *SurveyService) Login(ctx context.Context, msg Credentials) error {
	user, err := s.LookupUser(ctx, msg.Username)
	if err != nil {
		return err
	}

	err = s.hasher.Verify(user.PasswordHash, msg.Password)
	if err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return ErrCredentialMismatch
		}
		return fmt.Errorf("verify password of %q: %w", user.Username, err)
	}

	return nil
}

func (s *SurveyService) LookupUser(ctx context.Context, username string) (User, error) {
	record, err := s.repo.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, unavailable("get user", err)
	}

	return toUser(record), nil
}

// CreateForm creates an empty form owned by an existing user.
func (s *SurveyService) CreateForm(ctx context.Context, msg FormMessage) (Form, error) {
	author, err := s.LookupUser(ctx, msg.Author)
	if err != nil {
		return Form{}, err
	}

	if msg.Name == "" {
		return Form{}, ErrBlankName
	}

	record := repository.Form{
		ID:        s.newID(),
		Author:    author.Username,
		Name:      msg.Name,
		CreatedAt: s.now(),
	}
	if msg.Description != nil {
		record.Description = *msg.Description
	}

	if err = s.repo.CreateForm(ctx, record); err != nil {
		return Form{}, unavailable("create form", err)
	}

	s.logs.Infow("form created", "form_id", record.ID, "author", record.Author)

	return toForm(record), nil
}

// ListFormsByAuthor returns every form authored by username, possibly none.
func (s *SurveyService) ListFormsByAuthor(ctx context.Context, username string) ([]Form, error) {
	if _, err := s.LookupUser(ctx, username); err != nil {
		return nil, err
	}

	records, err := s.repo.GetFormsByAuthor(ctx, username)
	if err != nil {
		return nil, unavailable("get forms by author", err)
	}

	forms := make([]Form, 0, len(records))
	for _, rec := range records {
		forms = append(forms, toForm(rec))
	}

	return forms, nil
}

func (s *SurveyService) FindForm(ctx context.Context, formID string) (Form, error) {
	record, err := s.repo.GetForm(ctx, formID)
	if err != nil {
		if errors.Is(err, repository.ErrFormNotFound) {
			return Form{}, ErrFormNotFound
		}
		return Form{}, unavailable("get form", err)
	}

	return toForm(record), nil
}

// AddQuestion appends a question with no answers and returns the updated form.
func (s *SurveyService) AddQuestion(ctx context.Context, msg QuestionMessage) (Form, error) {
	if msg.FormID == "" {
		return Form{}, ErrBlankFormID
	}

	form, err := s.FindForm(ctx, msg.FormID)
	if err != nil {
		return Form{}, err
	}

	for _, q := range form.Questions {
		if q.Name == msg.Name {
			return Form{}, ErrDuplicateQuestion
		}
	}

	question := repository.Question{
		ID:              s.newID(),
		Name:            msg.Name,
		TypeOfInput:     msg.TypeOfInput,
		PossibleAnswers: nonNil(msg.PossibleAnswers),
		CreatedAt:       s.now(),
	}
	if question.TypeOfInput == "" {
		question.TypeOfInput = InputText
	}

	err = s.repo.AddQuestion(ctx, form.ID, question)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateQuestion):
			return Form{}, ErrDuplicateQuestion
		case errors.Is(err, repository.ErrFormNotFound):
			return Form{}, ErrFormNotFound
		}
		return Form{}, unavailable("add question", err)
	}

	s.logs.Infow("question added", "form_id", form.ID, "question", question.Name)

	return s.FindForm(ctx, form.ID)
}

// SubmitAnswers records answers against questions of the form. Every entry is
// validated before anything is written, so a batch is stored entirely or not at all.
func (s *SurveyService) SubmitAnswers(ctx context.Context, formID string, entries []AnswerMessage) (Form, error) {
	record, err := s.repo.GetForm(ctx, formID)
	if err != nil {
		if errors.Is(err, repository.ErrFormNotFound) {
			return Form{}, ErrFormNotFound
		}
		return Form{}, unavailable("get form", err)
	}

	if len(entries) == 0 {
		return Form{}, ErrEmptyAnswerSet
	}

	questionIDs := make(map[string]string, len(record.Questions))
	for _, q := range record.Questions {
		questionIDs[q.Name] = q.ID
	}

	answers := make([]repository.Answer, 0, len(entries))
	for i, entry := range entries {
		if entry.Question == "" || entry.Answer == "" {
			return Form{}, fmt.Errorf("answer %d: %w", i, ErrMalformedAnswer)
		}
		if len(record.Questions) == 0 {
			return Form{}, ErrNoQuestionsDefined
		}

		questionID, ok := questionIDs[entry.Question]
		if !ok {
			return Form{}, fmt.Errorf("answer %d: %w", i, ErrQuestionNotFound)
		}

		answers = append(answers, repository.Answer{
			QuestionID: questionID,
			Value:      entry.Answer,
			CreatedAt:  s.now(),
		})

		if s.firstAnswerOnly {
			break
		}
	}

	err = s.repo.AddAnswers(ctx, record.ID, answers)
	if err != nil {
		if errors.Is(err, repository.ErrFormNotFound) {
			return Form{}, ErrFormNotFound
		}
		return Form{}, unavailable("add answers", err)
	}

	s.logs.Infow("answers recorded", "form_id", record.ID, "count", len(answers))

	return s.FindForm(ctx, record.ID)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

func toUser(rec repository.User) User {
	return User{
		ID:           rec.ID,
		Username:     rec.Username,
		PasswordHash: rec.PasswordHash,
	}
}

func toForm(rec repository.Form) Form {
	form := Form{
		ID:          rec.ID,
		Author:      rec.Author,
		Name:        rec.Name,
		Description: rec.Description,
		Questions:   make([]Question, 0, len(rec.Questions)),
	}

	for _, q := range rec.Questions {
		answers := make([]string, 0, len(q.Answers))
		for _, a := range q.Answers {
			answers = append(answers, a.Value)
		}

		form.Questions = append(form.Questions, Question{
			Name:            q.Name,
			TypeOfInput:     q.TypeOfInput,
			PossibleAnswers: nonNil(q.PossibleAnswers),
			Answers:         answers,
		})
	}

	return form
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
