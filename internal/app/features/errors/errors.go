// internal/app/features/errors/errors.go
//
// Package errors writes API responses. Success and failure bodies are JSON
// except for the two password-reset endpoints, which answer in plain text.
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"go.uber.org/zap"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes {"message": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Error writes {"error": msg}. Upload, checkout, subscribe and address
// endpoints report failures under this key.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// Text writes msg as text/plain.
func Text(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

// Validation writes 400 with the first message and every failing field.
func Validation(w http.ResponseWriter, res inputval.Result) {
	JSON(w, http.StatusBadRequest, struct {
		Message string                `json:"message"`
		Errors  []inputval.FieldError `json:"errors"`
	}{Message: res.First(), Errors: res.Errors})
}

// NotFound writes 404 {"message": msg}.
func NotFound(w http.ResponseWriter, msg string) {
	Message(w, http.StatusNotFound, msg)
}

// ErrorLogger logs failures before answering the client.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger returns an ErrorLogger writing to logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs err at Error level and writes 500 {"message": userMsg}.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	Message(w, http.StatusInternalServerError, userMsg)
}

// LogBadRequest logs err at Debug level and writes 400 {"message": userMsg}.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.log.Debug(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	Message(w, http.StatusBadRequest, userMsg)
}
