package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"creator-campaigns/internal/core/normalize"
	"creator-campaigns/internal/core/port"
	"creator-campaigns/internal/core/scenario"
	"creator-campaigns/internal/core/validation"
)

// validationErrorResp is the body of a 422 caused by violated business
// rules: every violation keyed by field plus the one to surface first.
type validationErrorResp struct {
	Errors     validation.FormErrors `json:"errors"`
	First      *validation.Violation `json:"first,omitempty"`
	Violations validation.Violations `json:"violations"`
}

type errorResp struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors onto HTTP statuses. Validation failures
// and records that cannot become a campaign are 422; unknown ids are 404.
// Anything else is logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		resp := validationErrorResp{Errors: verr.Fields(), Violations: verr.Violations}
		if first, ok := verr.Violations.First(); ok {
			resp.First = &first
		}
		h.writeJSON(w, http.StatusUnprocessableEntity, resp)
	case errors.Is(err, normalize.ErrMissingType),
		errors.Is(err, normalize.ErrUnknownType),
		errors.Is(err, normalize.ErrInvalidDate):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResp{Error: err.Error()})
	case errors.Is(err, port.ErrCampaignNotFound), errors.Is(err, scenario.ErrUnknownScenario):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrNotRetainer):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("request error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// decodeRecord reads a flat JSON record. Numbers are kept as json.Number so
// large view counts survive intact.
func decodeRecord(body io.Reader) (normalize.Record, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()
	var rec normalize.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("empty record")
	}
	return rec, nil
}
