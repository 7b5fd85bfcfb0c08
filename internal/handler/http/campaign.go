package http

import (
	"net/http"

	"github.com/MKhiriev/brand-snap/internal/utils"
	"github.com/MKhiriev/brand-snap/models"
)

// createCampaign handles POST /api/campaigns?projectId=.
func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryID(r, "projectId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var campaign models.Campaign
	if err = decodeBody(r, &campaign); err != nil {
		writeError(w, r, err)
		return
	}
	campaign.ProjectID = projectID

	created, err := h.services.CampaignService.Create(r.Context(), actorID(r), campaign)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

// listCampaigns handles GET /api/campaigns?projectId=.
func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryID(r, "projectId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	campaigns, err := h.services.CampaignService.ListByProject(r.Context(), actorID(r), projectID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, campaigns, http.StatusOK)
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	campaign, err := h.services.CampaignService.Get(r.Context(), actorID(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, campaign, http.StatusOK)
}

func (h *Handler) updateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var campaign models.Campaign
	if err = decodeBody(r, &campaign); err != nil {
		writeError(w, r, err)
		return
	}
	campaign.ID = id

	updated, err := h.services.CampaignService.Update(r.Context(), actorID(r), campaign)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CampaignService.Delete(r.Context(), actorID(r), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
