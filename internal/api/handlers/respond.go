// Package handlers implements the HTTP endpoints of the API.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/eventdesk/server/internal/api/problem"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// pathID parses the {id} path segment. On failure it writes a validation
// problem and reports false.
func pathID(w http.ResponseWriter, r *http.Request, env string) (int64, bool) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", nil, env,
			problem.WithDetail("id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// decodeJSON parses a request body. Unknown fields are ignored; the struct
// tags define the accepted shape.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
