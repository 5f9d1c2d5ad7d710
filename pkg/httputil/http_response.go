package httputil

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

const contentTypeJSON = "application/json; charset=utf-8"

// ErrorResponse is the envelope of every non-2xx answer
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	writeJSON(w, statusCode, resp, sonic.ConfigFastest)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	writeJSON(w, statusCode, body, sonic.ConfigDefault)
}

func writeJSON(w http.ResponseWriter, statusCode int, body any, api sonic.API) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	if body == nil {
		return
	}
	// headers are already sent, so the failure can only be logged
	if err := api.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response error", slog.String("error", err.Error()))
	}
}
