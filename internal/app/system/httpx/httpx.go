// Package httpx holds the JSON request/response plumbing shared by all
// feature handlers: body decoding with a size cap, success encoding, and
// the single place apperr values become {message, error?} bodies.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/limits"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// errorBody is the standard error response shape.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Decode reads a JSON request body into dst, enforcing the request body
// size cap. A malformed or oversized body yields a Validation error.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Validationf("request body is required")
		}
		return apperr.Wrap(apperr.Validation, "invalid request body", err)
	}
	return nil
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error maps err through the apperr taxonomy and writes the standard
// error body. Internal failures are logged; expected rejections are not.
func Error(w http.ResponseWriter, log *zap.Logger, err error, fallback string) {
	ae := apperr.From(err, fallback)
	body := errorBody{Message: ae.Message}
	if ae.Kind == apperr.Internal {
		if log != nil {
			log.Error(fallback, zap.Error(err))
		}
		if ae.Err != nil {
			body.Error = ae.Err.Error()
		}
	}
	JSON(w, ae.Status(), body)
}

// Message writes a bare {message} body with the given status.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// PathID parses the named chi URL parameter as an ObjectID. A value that
// is not valid hex yields a Validation error naming the parameter.
func PathID(r *http.Request, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, name))
	if err != nil {
		return primitive.NilObjectID, apperr.Validationf("invalid " + name)
	}
	return id, nil
}
