package response

import (
	"encoding/json"
	"net/http"
	"roomops/shared/constant"
	"roomops/shared/failure"
	"roomops/shared/logger"
)

// storeRetryAfterSeconds is advertised on retryable store failures.
const storeRetryAfterSeconds = "1"

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error is the failure envelope. Kind lets callers branch without parsing the message;
// Retryable marks failures the caller may safely repeat from its last known state.
type Error struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	Retryable bool   `json:"retryable,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError maps err to its status code and writes the {error, kind} envelope.
func WithError(writer http.ResponseWriter, err error) {
	body := Error{
		Error: failure.GetMessage(err),
		Kind:  failure.GetKind(err),
	}

	if body.Kind == failure.KindStore {
		body.Retryable = true
		writer.Header().Set(constant.RequestHeaderRetryAfter, storeRetryAfterSeconds)
	}

	write(writer, failure.GetCode(err), body)
}

// WithFile streams content as a download named fileName.
func WithFile(writer http.ResponseWriter, contentType, fileName string, content []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.Header().Set(constant.RequestHeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(content); err != nil {
		logger.ErrorWithStack(err)
	}
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(encoded); err != nil {
		logger.ErrorWithStack(err)
	}
}
