package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"surveyapp/internal/core"
	"surveyapp/internal/db"
	"surveyapp/internal/http/handler"
	"surveyapp/internal/http/handler/middleware"
	"surveyapp/internal/http/payload"
	"surveyapp/internal/repository"
	"surveyapp/pkg/password"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Survey API end to end", func() {
	var (
		srv  *httptest.Server
		opts []core.Option
	)

	post := func(path, body string) (*http.Response, map[string]any) {
		resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		var decoded map[string]any
		Expect(json.NewDecoder(resp.Body).Decode(&decoded)).To(Succeed())
		return resp, decoded
	}

	getForm := func(formID string) core.Form {
		resp, err := http.Get(srv.URL + "/form/" + formID)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		var form core.Form
		Expect(json.NewDecoder(resp.Body).Decode(&form)).To(Succeed())
		return form
	}

	BeforeEach(func() {
		opts = nil
	})

	JustBeforeEach(func() {
		logger := zap.NewNop().Sugar()

		gormDB, err := db.NewGormDB(db.SQLitePrefix + "file:" + uuid.NewString() + "?mode=memory&cache=shared")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(gormDB.Close)

		sqlDB, err := gormDB.DB.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		repo := repository.NewSurveyRepository(gormDB)
		Expect(repo.Migrate()).To(Succeed())

		hasher, err := password.NewService(password.Argon2id)
		Expect(err).NotTo(HaveOccurred())

		service := core.NewSurveyService(logger, repo, hasher, opts...)
		sh := handler.NewSurveyHandler(logger, payload.DecodeValidator{}, service)

		mux := http.NewServeMux()
		sh.RegisterRoutes(mux)
		var h http.Handler = mux
		h = middleware.NewRecoverMiddleware(logger).Recover(h)
		h = middleware.NewLoggingMiddleware(logger).Logging(h)
		h = middleware.CORS(h)
		h = middleware.NewRequestIDMiddleware().RequestID(h)

		srv = httptest.NewServer(h)
		DeferCleanup(srv.Close)
	})

	It("registers, creates a form, adds a question and records an answer", func() {
		resp, user := post("/register", `{"username":"alice","password":"pw1"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(user["username"]).To(Equal("alice"))
		Expect(user["password_hash"]).To(HavePrefix("$argon2id$"))
		Expect(resp.Header.Get(middleware.RequestIDHeader)).NotTo(BeEmpty())

		resp, _ = post("/register", `{"username":"alice","password":"other"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

		resp, body := post("/login", `{"username":"alice","password":"pw1"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(Equal(map[string]any{"status": "OK"}))

		resp, body = post("/login", `{"username":"alice","password":"wrong"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(body["error"]).To(Equal("credential mismatch"))

		resp, form := post("/form", `{"author":"alice","name":"Survey1"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		formID := form["id"].(string)
		Expect(formID).NotTo(BeEmpty())

		resp, _ = post("/question", `{"username":"alice","form_id":"`+formID+`","name":"Favorite color?"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		resp, body = post("/question", `{"username":"alice","form_id":"`+formID+`","name":"Favorite color?"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(body["error"]).To(Equal("question already exists"))

		resp, _ = post("/answer/"+formID, `[{"question":"Favorite color?","answer":"Blue"}]`)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		stored := getForm(formID)
		Expect(stored.Questions).To(HaveLen(1))
		Expect(stored.Questions[0].Answers).To(Equal([]string{"Blue"}))
		Expect(stored.Questions[0].TypeOfInput).To(Equal(core.InputText))

		listResp, err := http.Get(srv.URL + "/forms/alice")
		Expect(err).NotTo(HaveOccurred())
		defer listResp.Body.Close()
		var forms []core.Form
		Expect(json.NewDecoder(listResp.Body).Decode(&forms)).To(Succeed())
		Expect(forms).To(HaveLen(1))
		Expect(forms[0].ID).To(Equal(formID))
	})

	When("a batch names the same question twice", func() {
		var formID string

		JustBeforeEach(func() {
			post("/register", `{"username":"alice","password":"pw1"}`)
			_, form := post("/form", `{"author":"alice","name":"Survey1"}`)
			formID = form["id"].(string)
			post("/question", `{"form_id":"`+formID+`","name":"Q1"}`)
		})

		It("records every answer", func() {
			resp, _ := post("/answer/"+formID, `[{"question":"Q1","answer":"A1"},{"question":"Q1","answer":"A2"}]`)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(getForm(formID).Questions[0].Answers).To(Equal([]string{"A1", "A2"}))
		})

		It("records nothing when a later entry is invalid", func() {
			resp, body := post("/answer/"+formID, `[{"question":"Q1","answer":"A1"},{"question":"Q9","answer":"A2"}]`)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(body["error"]).To(Equal("question not found"))
			Expect(getForm(formID).Questions[0].Answers).To(BeEmpty())
		})

		Context("in first-answer-only mode", func() {
			BeforeEach(func() {
				opts = append(opts, core.WithFirstAnswerOnly(true))
			})

			It("records only the first answer", func() {
				resp, _ := post("/answer/"+formID, `[{"question":"Q1","answer":"A1"},{"question":"Q1","answer":"A2"}]`)
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(getForm(formID).Questions[0].Answers).To(Equal([]string{"A1"}))
			})
		})
	})

	It("rejects answers to a form without questions", func() {
		post("/register", `{"username":"alice","password":"pw1"}`)
		_, form := post("/form", `{"author":"alice","name":"Empty"}`)

		resp, body := post("/answer/"+form["id"].(string), `[{"question":"Q1","answer":"A1"}]`)
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(body["error"]).To(Equal("no questions defined"))
	})

	It("rejects a form for an unknown author", func() {
		resp, body := post("/form", `{"author":"nobody","name":"Survey1"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(body["error"]).To(Equal("user not found"))
	})
})
