package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.ListScenarios(r.Context()))
}

// handleRunScenarios runs the whole registry. The report is returned with
// 200 even when scenarios fail; callers read the failed count.
func (h *Handler) handleRunScenarios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.RunScenarios(r.Context()))
}

func (h *Handler) handleRunScenario(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.RunScenario(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
