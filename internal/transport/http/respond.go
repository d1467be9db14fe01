package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeValidation         = "validation_failed"
	codeSignatureMismatch  = "signature_mismatch"
	codeGatewayError       = "payment_gateway_error"
	codeShareLinkFailed    = "share_link_failed"
	codeForbidden          = "forbidden"
	codeInternalError      = "internal_error"
)

// envelope is the uniform response shape for every endpoint. Error carries a
// stable machine-readable code; Message stays generic so internals never leak.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, envelope{
		Success: false,
		Message: msg,
		Error:   code,
	})
}

func writeJSON(w http.ResponseWriter, status int, resp envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(resp)
	if err != nil {
		_, _ = w.Write([]byte(`{"success":false,"message":"internal error","error":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
