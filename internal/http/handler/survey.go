package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"surveyapp/internal/core"
	"surveyapp/internal/http/handler/middleware"
	"surveyapp/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Root          = "GET /{$}"
	Docs          = "GET /docs"
	Health        = "GET /health"
	Register      = "POST /register"
	Login         = "POST /login"
	GetForms      = "GET /forms/{username}"
	GetUserForms  = "GET /users/{username}"
	CreateForm    = "POST /form"
	GetForm       = "GET /form/{form_id}"
	AddQuestion   = "POST /question"
	SubmitAnswers = "POST /answer/{form_id}"
)

// domainErrors are answered with 400 and their own message.
var domainErrors = []error{
	core.ErrDuplicateUsername,
	core.ErrUserNotFound,
	core.ErrCredentialMismatch,
	core.ErrBlankName,
	core.ErrBlankFormID,
	core.ErrFormNotFound,
	core.ErrDuplicateQuestion,
	core.ErrEmptyAnswerSet,
	core.ErrMalformedAnswer,
	core.ErrNoQuestionsDefined,
	core.ErrQuestionNotFound,
}

type SurveyHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	service          SurveyService
}

func NewSurveyHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, service SurveyService) *SurveyHandler {
	return &SurveyHandler{
		logs:             logger,
		requestValidator: requestValidator,
		service:          service,
	}
}

func (h *SurveyHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc(Root, h.HandleRoot)
	mux.HandleFunc(Docs, h.HandleDocs)
	mux.HandleFunc(Health, h.HandleHealth)
	mux.HandleFunc(Register, h.HandleRegister)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(GetForms, h.HandleGetForms)
	mux.HandleFunc(GetUserForms, h.HandleGetForms)
	mux.HandleFunc(CreateForm, h.HandleCreateForm)
	mux.HandleFunc(GetForm, h.HandleGetForm)
	mux.HandleFunc(AddQuestion, h.HandleAddQuestion)
	mux.HandleFunc(SubmitAnswers, h.HandleSubmitAnswers)
}

func (h *SurveyHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	if err := h.service.Ping(r.Context()); err != nil {
		h.fail(w, err, Health, requestId)
		return
	}

	h.respond(w, StatusResponse{Status: "OK"}, http.StatusOK, requestId)
}

func (h *SurveyHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.CredentialsRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, err, Register, requestId)
		return
	}

	user, err := h.service.Register(r.Context(), req.ToCoreCredentials())
	if err != nil {
		h.fail(w, err, Register, requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *SurveyHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.CredentialsRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, err, Login, requestId)
		return
	}

	if err := h.service.Login(r.Context(), req.ToCoreCredentials()); err != nil {
		h.fail(w, err, Login, requestId)
		return
	}

	h.logs.Infow("user logged in",
		"username", req.Username,
		"handler", Login,
		"request_id", requestId)

	h.respond(w, StatusResponse{Status: "OK"}, http.StatusOK, requestId)
}

// HandleGetForms serves both /forms/{username} and /users/{username}.
func (h *SurveyHandler) HandleGetForms(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	forms, err := h.service.ListFormsByAuthor(r.Context(), r.PathValue("username"))
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.respond(w, ErrorResponse{Error: usernameNotFoundErr}, http.StatusBadRequest, requestId)
			h.logs.Warnw("request rejected",
				"error", err,
				"handler", GetForms,
				"request_id", requestId)
			return
		}
		h.fail(w, err, GetForms, requestId)
		return
	}

	h.respond(w, forms, http.StatusOK, requestId)
}

func (h *SurveyHandler) HandleCreateForm(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.FormRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, err, CreateForm, requestId)
		return
	}

	form, err := h.service.CreateForm(r.Context(), req.ToCoreFormMessage())
	if err != nil {
		h.fail(w, err, CreateForm, requestId)
		return
	}

	h.respond(w, form, http.StatusOK, requestId)
}

func (h *SurveyHandler) HandleGetForm(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	form, err := h.service.FindForm(r.Context(), r.PathValue("form_id"))
	if err != nil {
		h.fail(w, err, GetForm, requestId)
		return
	}

	h.respond(w, form, http.StatusOK, requestId)
}

func (h *SurveyHandler) HandleAddQuestion(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.QuestionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, err, AddQuestion, requestId)
		return
	}

	form, err := h.service.AddQuestion(r.Context(), req.ToCoreQuestionMessage())
	if err != nil {
		h.fail(w, err, AddQuestion, requestId)
		return
	}

	h.respond(w, form, http.StatusOK, requestId)
}

func (h *SurveyHandler) HandleSubmitAnswers(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.AnswersRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, err, SubmitAnswers, requestId)
		return
	}

	form, err := h.service.SubmitAnswers(r.Context(), r.PathValue("form_id"), req.ToCoreAnswers())
	if err != nil {
		h.fail(w, err, SubmitAnswers, requestId)
		return
	}

	h.respond(w, form, http.StatusOK, requestId)
}

// fail maps err to its status code and error body.
func (h *SurveyHandler) fail(w http.ResponseWriter, err error, route, requestId string) {
	var vErr *payload.ValidationError
	if errors.As(err, &vErr) {
		h.respond(w, ValidationErrorResponse{
			Detail: vErr.Detail,
			Error:  payload.BlankFieldsMessage,
		}, http.StatusUnprocessableEntity, requestId)
		h.logs.Warnw("invalid request payload",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	for _, domainErr := range domainErrors {
		if errors.Is(err, domainErr) {
			h.respond(w, ErrorResponse{Error: domainErr.Error()}, http.StatusBadRequest, requestId)
			h.logs.Warnw("request rejected",
				"error", err,
				"handler", route,
				"request_id", requestId)
			return
		}
	}

	code, message := http.StatusInternalServerError, oopsErr
	if errors.Is(err, core.ErrStoreUnavailable) {
		code, message = http.StatusServiceUnavailable, serviceUnavailable
	}

	h.respond(w, ErrorResponse{Error: message}, code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *SurveyHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
