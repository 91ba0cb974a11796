package httpjson

import (
	"encoding/json"
	"net/http"

	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

// Respond writes payload as a JSON body with the given status.
func Respond(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type errorBody struct {
	Type       string `json:"type"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// RespondError maps a domain error kind onto its HTTP status. Untagged
// errors surface as 500 with a generic message.
func RespondError(w http.ResponseWriter, err error) {
	status := domain.HTTPStatus(err)
	kind := domain.Kind(err)

	message := err.Error()
	if kind == "" {
		kind = "Internal Server Error"
		message = "internal server error"
	}

	Respond(w, status, errorBody{
		Type:       string(kind),
		StatusCode: status,
		Message:    message,
	})
}
