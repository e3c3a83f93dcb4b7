package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"everafter/internal/domain"
)

const internalMessage = "Something went wrong. Please try again."

// statusFor maps an error kind to an HTTP status.
func statusFor(err error) int {
	if domain.KindOf(err) == domain.KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// publicMessage is what the caller may see: the domain message, or a generic
// one for unclassified errors.
func publicMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return internalMessage
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	l := s.logger(r.Context())
	if status >= 500 {
		l.Error("request failed", "kind", domain.KindOf(err).String(), "err", err, "cause", errors.Unwrap(err))
	} else {
		l.Info("request rejected", "err", err)
	}
	writeJSON(w, status, map[string]string{"error": publicMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
