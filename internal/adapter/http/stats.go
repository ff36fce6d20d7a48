package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"creator-campaigns/internal/core/domain"
	"creator-campaigns/internal/core/metrics"
	"creator-campaigns/internal/core/port"
)

type statsResp struct {
	CampaignID string                `json:"campaign_id"`
	Stats      metrics.CampaignStats `json:"stats"`
	DaysLeft   int                   `json:"days_left"`
	Display    port.StatsDisplay     `json:"display"`
}

// handleStats returns campaign statistics recomputed from the stored
// submissions on every call.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, statsResp{
		CampaignID: stats.CampaignID,
		Stats:      stats.Stats,
		DaysLeft:   stats.DaysLeft,
		Display:    stats.Display,
	})
}

type progressResp struct {
	CampaignID string                  `json:"campaign_id"`
	CreatorID  string                  `json:"creator_id"`
	Progress   domain.RetainerProgress `json:"progress"`
}

// handleProgress returns a creator's progress on a retainer. Other campaign
// types answer 409.
func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.svc.GetProgress(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "creatorID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, progressResp{
		CampaignID: progress.CampaignID,
		CreatorID:  progress.CreatorID,
		Progress:   progress.Progress,
	})
}
