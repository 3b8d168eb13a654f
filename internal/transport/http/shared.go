package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	pkgerrors "openfairdb/pkg/errors"
)

// writeJSON centralizes response encoding so every handler emits the same
// envelope shape and content type.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates coded errors to HTTP responses. Keeping it here
// ensures consistent JSON error envelopes.
func WriteError(w http.ResponseWriter, err error) {
	code := pkgerrors.CodeOf(err)
	status := pkgerrors.ToHTTPStatus(code)
	message := "internal error"
	var coded *pkgerrors.Error
	if errors.As(err, &coded) && status < http.StatusInternalServerError {
		message = coded.Message
	}
	writeJSON(w, status, map[string]string{
		"error":   string(code),
		"message": message,
	})
}

// decodeJSON parses a request body, translating malformed JSON into a
// bad-request error. Unknown fields are ignored; null equals omitted.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeBadRequest, "invalid request body")
	}
	return nil
}
