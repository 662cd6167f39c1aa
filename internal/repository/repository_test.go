package repository_test

import (
	"context"
	"errors"
	"surveyapp/internal/db"
	"surveyapp/internal/repository"
	"surveyapp/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SurveyRepository", func() {
	var (
		repo        *repository.SurveyRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeStorage = new(fake.Storage)
		repo = repository.NewSurveyRepository(fakeStorage)
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			It("should migrate all tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(tables).To(HaveLen(4))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Form{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Question{}))
				Expect(tables[3]).To(BeAssignableToTypeOf(&repository.Answer{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{
				ID:           uuid.NewString(),
				Username:     "alice",
				PasswordHash: "hash",
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("insert succeeds", func() {
			It("should save the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, arg := fakeStorage.CreateArgsForCall(0)
				Expect(arg).To(Equal(&user))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(db.ErrDuplicate)
			})

			It("should return duplicate username error", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateUsername))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrDuplicateUsername))
			})
		})
	})

	Describe("GetUser", func() {
		var (
			user     repository.User
			err      error
			testUser repository.User
		)

		BeforeEach(func() {
			testUser = repository.User{
				ID:           uuid.NewString(),
				Username:     "alice",
				PasswordHash: "hashed_password",
			}
		})

		JustBeforeEach(func() {
			user, err = repo.GetUser(ctx, "alice")
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any, preloads ...db.Preload) error {
					user := dest.(*repository.User)
					*user = testUser
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(testUser))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _, preloads := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
				Expect(preloads).To(BeEmpty())
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateForm", func() {
		It("should insert the form", func() {
			form := repository.Form{ID: uuid.NewString(), Author: "alice", Name: "Survey1"}
			Expect(repo.CreateForm(ctx, form)).To(Succeed())

			Expect(fakeStorage.CreateCallCount()).To(Equal(1))
			_, arg := fakeStorage.CreateArgsForCall(0)
			Expect(arg).To(Equal(&form))
		})

		It("should wrap storage errors", func() {
			fakeStorage.CreateReturns(fakeErr)
			err := repo.CreateForm(ctx, repository.Form{ID: uuid.NewString()})
			Expect(err).To(MatchError(fakeErr))
			Expect(err).To(MatchError(ContainSubstring("create form")))
		})
	})

	Describe("GetForm", func() {
		var (
			formID string
			form   repository.Form
			err    error
		)

		BeforeEach(func() {
			formID = uuid.NewString()
		})

		JustBeforeEach(func() {
			form, err = repo.GetForm(ctx, formID)
		})

		When("the form exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any, preloads ...db.Preload) error {
					f := dest.(*repository.Form)
					*f = repository.Form{ID: formID, Name: "Survey1"}
					return nil
				}
			})

			It("should load it together with questions and answers", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(form.ID).To(Equal(formID))

				_, col, val, _, preloads := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(formID))
				Expect(preloads).To(Equal([]db.Preload{
					{Association: "Questions", OrderBy: "seq"},
					{Association: "Questions.Answers", OrderBy: "seq"},
				}))
			})
		})

		When("the form does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return form not found error", func() {
				Expect(err).To(MatchError(repository.ErrFormNotFound))
			})
		})
	})

	Describe("GetFormsByAuthor", func() {
		var (
			forms []repository.Form
			err   error
		)

		JustBeforeEach(func() {
			forms, err = repo.GetFormsByAuthor(ctx, "alice")
		})

		When("the author has forms", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any, preloads ...db.Preload) error {
					fs := dest.(*[]repository.Form)
					*fs = []repository.Form{{ID: "1"}, {ID: "2"}}
					return nil
				}
			})

			It("should return them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(forms).To(HaveLen(2))
				_, col, val, _, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("author"))
				Expect(val).To(Equal("alice"))
			})
		})

		When("the author has no forms", func() {
			It("should return an empty, non-nil slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(forms).NotTo(BeNil())
				Expect(forms).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("AddQuestion", func() {
		var (
			formID   string
			question repository.Question
			err      error
		)

		BeforeEach(func() {
			formID = uuid.NewString()
			question = repository.Question{
				ID:          uuid.NewString(),
				Name:        "Favorite color?",
				TypeOfInput: "text",
				Answers:     []repository.Answer{{Value: "ignored"}},
			}
		})

		JustBeforeEach(func() {
			err = repo.AddQuestion(ctx, formID, question)
		})

		When("the form exists", func() {
			It("should insert the question bound to the form with no answers", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, arg := fakeStorage.CreateArgsForCall(0)
				saved := arg.(*repository.Question)
				Expect(saved.FormID).To(Equal(formID))
				Expect(saved.Name).To(Equal("Favorite color?"))
				Expect(saved.Answers).To(BeEmpty())
			})
		})

		When("the form does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return form not found without inserting", func() {
				Expect(err).To(MatchError(repository.ErrFormNotFound))
				Expect(fakeStorage.CreateCallCount()).To(Equal(0))
			})
		})

		When("the name is already used in the form", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(db.ErrDuplicate)
			})

			It("should return duplicate question error", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateQuestion))
			})
		})
	})

	Describe("AddAnswers", func() {
		var (
			answers []repository.Answer
			err     error
		)

		BeforeEach(func() {
			answers = []repository.Answer{
				{QuestionID: "q1", Value: "Blue"},
				{QuestionID: "q1", Value: "Red"},
			}
		})

		JustBeforeEach(func() {
			err = repo.AddAnswers(ctx, "form", answers)
		})

		When("insert succeeds", func() {
			It("should insert all answers at once", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, arg := fakeStorage.CreateArgsForCall(0)
				Expect(arg).To(Equal(&answers))
			})
		})

		When("there is nothing to insert", func() {
			BeforeEach(func() {
				answers = nil
			})

			It("should return immediately", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.CreateCallCount()).To(Equal(0))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
