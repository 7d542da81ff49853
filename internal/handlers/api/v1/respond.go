package v1

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/ironvale/campaign-api/internal/errors"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps the error code to an HTTP status. Domain rule violations
// are expected outcomes and are not logged; everything else is.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	if !code.IsDomain() && status >= 500 {
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", code.String(),
			"error", err,
		)
	}

	msg := err.Error()
	if status >= 500 {
		// Internal details stay in the logs.
		msg = "internal error"
	}

	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:    code.String(),
		Message: msg,
	}})
}

// decode reads a JSON request body into dst. An empty body is allowed so
// bodyless POSTs (revert, end concentration) share the same path.
func decode(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return nil
		}
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}
