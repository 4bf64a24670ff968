package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"time"

	"ev-range-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

var (
	errBadJSON         = errors.New("invalid json body")
	errMultipleObjects = errors.New("body must contain only one JSON object")
)

// Strictly decode a single JSON object into dst. Unknown fields and
// trailing content are rejected so client typos fail loudly instead
// of silently defaulting.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return errBadJSON
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errMultipleObjects
	}

	return nil
}

// Block for the configured resolve delay, giving up early when the
// client goes away.
func waitBeforeResolve(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Map resolution and validation failures onto 400s with user-facing
// messages; anything unexpected is a 500. A canceled request gets no
// response body at all.
func writeResolveError(w http.ResponseWriter, r *http.Request, err error) {
	var unknownErr *domain.UnknownLocationError
	var rangeErr *domain.ParameterRangeError

	switch {
	case errors.Is(err, domain.ErrMissingInput):
		writeError(w, r, http.StatusBadRequest, "please enter both a starting city and a destination")
	case errors.As(err, &unknownErr):
		writeError(w, r, http.StatusBadRequest, unknownErr.Error())
	case errors.As(err, &rangeErr):
		writeError(w, r, http.StatusBadRequest, rangeErr.Error())
	case errors.Is(err, context.Canceled):
	default:
		log.Printf("request failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// Presentation rounding only; services keep full precision.
func round1(x float64) float64 { return math.Round(x*10) / 10 }

func round4(x float64) float64 { return math.Round(x*10000) / 10000 }
