// Package handlers implements the service's HTTP endpoints. Every endpoint
// answers HTTP 200 and wraps its payload in the {success, data} envelope;
// logical failures are signalled through the success flag, with the reason
// placed in whatever field the endpoint's data shape provides.
package handlers

import (
	"net/http"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Response is the uniform envelope shared by all endpoints.
type Response[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// reasonBadBody is reported when the request body is not valid JSON for the
// endpoint's request shape (including out-of-range numeric fields).
const reasonBadBody = "Invalid request body"

func respond[T any](w http.ResponseWriter, logger *zap.Logger, success bool, data T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(Response[T]{Success: success, Data: data}); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
