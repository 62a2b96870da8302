package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/match-predictor/internal/usecase"
)

const (
	apiVersion  = "2.0"
	errorDomain = "match-predictor"

	internalMessage = "internal server error"
)

// envelope is the Google JSON style body every endpoint answers with.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorClass struct {
	httpStatus int
	reason     string
	status     string
}

var internalClass = errorClass{http.StatusInternalServerError, "internalError", "INTERNAL"}

// errorClasses is checked in order; the first sentinel matched wins.
var errorClasses = []struct {
	target error
	class  errorClass
}{
	{usecase.ErrInvalidInput, errorClass{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, errorClass{http.StatusNotFound, "teamNotFound", "NOT_FOUND"}},
	{usecase.ErrUnauthorized, errorClass{http.StatusUnauthorized, "unauthorized", "UNAUTHENTICATED"}},
	{usecase.ErrDataUnavailable, errorClass{http.StatusServiceUnavailable, "datasetUnavailable", "UNAVAILABLE"}},
}

func classify(err error) errorClass {
	for _, c := range errorClasses {
		if errors.Is(err, c.target) {
			return c.class
		}
	}
	return internalClass
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(_ context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{APIVersion: apiVersion, Data: data})
}

// writeError hides the message of anything that maps to 500.
func writeError(_ context.Context, w http.ResponseWriter, err error) {
	class := classify(err)
	message := internalMessage
	if class.httpStatus != http.StatusInternalServerError {
		message = err.Error()
	}
	writeErrorBody(w, class, message)
}

func writeInternalError(_ context.Context, w http.ResponseWriter) {
	writeErrorBody(w, internalClass, internalMessage)
}

func writeErrorBody(w http.ResponseWriter, class errorClass, message string) {
	writeJSON(w, class.httpStatus, envelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    class.httpStatus,
			Message: message,
			Status:  class.status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: class.reason, Message: message}},
		},
	})
}
