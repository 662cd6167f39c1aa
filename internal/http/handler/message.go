package handler

import "surveyapp/internal/http/payload"

const (
	oopsErr             = "unexpected error occurred"
	serviceUnavailable  = "service unavailable"
	usernameNotFoundErr = "username not found"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is returned with 422 when a request body cannot be used.
type ValidationErrorResponse struct {
	Detail []payload.FieldError `json:"detail"`
	Error  string               `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
