package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"creator-campaigns/internal/core/normalize"
	"creator-campaigns/internal/core/port"
	"creator-campaigns/internal/core/validation"
)

// campaignResp carries a campaign in its canonical flat encoding, the same
// shape it is stored in.
type campaignResp struct {
	Campaign normalize.Record `json:"campaign"`
}

// handleValidate runs full validation on a flat record. It answers 200 with
// the canonical campaign or 422 with every violation.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord(r.Body)
	if err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.ValidateRecord(r.Context(), rec)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignResp{Campaign: normalize.Encode(c)})
}

type stepReq struct {
	Record normalize.Record      `json:"record"`
	Step   validation.Step       `json:"step"`
	Fields []string              `json:"fields"`
	Errors validation.FormErrors `json:"errors"`
}

type stepResp struct {
	Set    validation.Violations `json:"set"`
	Clear  []string              `json:"clear"`
	Errors validation.FormErrors `json:"errors"`
	First  *validation.Violation `json:"first,omitempty"`
}

// handleValidateStep validates one wizard step. The caller sends its current
// error map and gets back the diff plus the merged map; a step always
// answers 200, violations included.
func (h *Handler) handleValidateStep(w http.ResponseWriter, r *http.Request) {
	var req stepReq
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if len(req.Fields) == 0 && len(validation.StepFields(req.Step)) == 0 {
		http.Error(w, "unknown step and no fields given", http.StatusBadRequest)
		return
	}
	if req.Record == nil {
		req.Record = normalize.Record{}
	}

	resp, err := h.svc.ValidateStep(r.Context(), port.StepReq{
		Record: req.Record,
		Step:   req.Step,
		Fields: req.Fields,
		Errors: req.Errors,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stepResp{
		Set:    resp.Diff.Set,
		Clear:  resp.Diff.Clear,
		Errors: resp.Errors,
		First:  resp.First,
	})
}

// handleCreateCampaign validates and stores a campaign, answering 201.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord(r.Body)
	if err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), rec)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Location", "/api/v1/campaigns/"+c.ID)
	h.writeJSON(w, http.StatusCreated, campaignResp{Campaign: normalize.Encode(c)})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignResp{Campaign: normalize.Encode(c)})
}
