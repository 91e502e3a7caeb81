package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sells-group/style-advisor/internal/advisor"
	"github.com/sells-group/style-advisor/internal/llm"
	"github.com/sells-group/style-advisor/internal/structured"
)

// Error codes returned in the error envelope.
const (
	CodeValidation          = "validation_error"
	CodeNoCandidates        = "no_candidates"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeUpstreamTimeout     = "upstream_timeout"
	CodeBadModelOutput      = "bad_model_output"
	CodeInternal            = "internal_error"
)

// SuccessEnvelope wraps every successful response body.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the error body.
type APIError struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	Details        any    `json:"details,omitempty"`
	RawModelOutput string `json:"raw_model_output,omitempty"`
}

// ErrorEnvelope wraps every error response body.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RequestError is a client error detected before the pipeline runs.
type RequestError struct {
	Message string
	Details map[string]string
	Err     error
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return e.Err }

// WriteSuccess writes data with status 200.
func WriteSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, SuccessEnvelope{Data: data})
}

// WriteError maps err onto a status code and error envelope.
func WriteError(w http.ResponseWriter, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Int("status", status), zap.String("code", body.Code), zap.Error(err))
	}
	writeJSON(w, status, ErrorEnvelope{Error: body})
}

func classify(err error) (int, APIError) {
	var reqErr *RequestError
	switch {
	case errors.As(err, &reqErr):
		body := APIError{Code: CodeValidation, Message: reqErr.Message}
		if len(reqErr.Details) > 0 {
			body.Details = reqErr.Details
		}
		return http.StatusBadRequest, body
	case errors.Is(err, advisor.ErrNoCandidates):
		return http.StatusUnprocessableEntity, APIError{
			Code:    CodeNoCandidates,
			Message: "no products match the given criteria",
		}
	case errors.Is(err, llm.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, APIError{
			Code:    CodeUpstreamTimeout,
			Message: "the style model did not answer in time",
		}
	case errors.Is(err, llm.ErrUpstreamUnavailable):
		return http.StatusBadGateway, APIError{
			Code:    CodeUpstreamUnavailable,
			Message: "the style model is unavailable",
		}
	}
	if raw, ok := structured.RawText(err); ok {
		msg := "the style model returned an unreadable answer"
		if errors.Is(err, structured.ErrMalformedPayload) {
			msg = "the style model returned malformed JSON"
		}
		return http.StatusBadGateway, APIError{
			Code:           CodeBadModelOutput,
			Message:        msg,
			RawModelOutput: raw,
		}
	}
	return http.StatusInternalServerError, APIError{Code: CodeInternal, Message: "unexpected error"}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}
