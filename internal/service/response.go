package service

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/programmerrush/api-bills/internal/logic"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
)

// WriteHttpError writes a standard JSON error response to the http.ResponseWriter.
func WriteHttpError(w http.ResponseWriter, httpCode int, message string) {
	resp := map[string]interface{}{
		"status":  "error",
		"code":    httpCode,
		"message": message,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteHttpJSON writes a JSON payload with the given status code.
func WriteHttpJSON(w http.ResponseWriter, httpCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// codeFromError maps logic-layer sentinel errors onto the status-code
// taxonomy. Anything unrecognized is an internal store/infra failure.
func codeFromError(err error) codes.Code {
	switch {
	case errors.Is(err, logic.ErrInvalidCase),
		errors.Is(err, logic.ErrInvalidMonth),
		errors.Is(err, logic.ErrJSONObjRequired),
		errors.Is(err, logic.ErrCompanyNameTaken):
		return codes.InvalidArgument
	case errors.Is(err, logic.ErrBillNotFound),
		errors.Is(err, logic.ErrCompanyNotFound):
		return codes.NotFound
	case errors.Is(err, logic.ErrPermissionDenied):
		return codes.PermissionDenied
	default:
		return codes.Internal
	}
}

// WriteLogicError translates a logic-layer error into an HTTP error response.
func WriteLogicError(w http.ResponseWriter, err error) {
	code := codeFromError(err)
	httpCode := runtime.HTTPStatusFromCode(code)
	message := err.Error()
	if code == codes.Internal {
		// Do not leak store internals to the client.
		message = "Internal server error"
	}
	WriteHttpError(w, httpCode, message)
}
