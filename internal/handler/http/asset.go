package http

import (
	"net/http"

	"github.com/MKhiriev/brand-snap/internal/utils"
	"github.com/MKhiriev/brand-snap/models"
)

// generateAsset handles POST /api/assets. The call blocks for the whole
// synthesis; a disconnecting client cancels it and nothing is stored.
func (h *Handler) generateAsset(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateAssetRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	asset, err := h.services.AssetService.Generate(r.Context(), actorID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, asset, http.StatusOK)
}

// listAssets handles GET /api/assets?campaignId=.
func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	campaignID, err := queryID(r, "campaignId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	assets, err := h.services.AssetService.List(r.Context(), actorID(r), campaignID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, assets, http.StatusOK)
}

func (h *Handler) updateAsset(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateAssetRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	asset, err := h.services.AssetService.Update(r.Context(), actorID(r), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, asset, http.StatusOK)
}

// deleteAsset answers 200 whether or not the asset existed.
func (h *Handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AssetService.Delete(r.Context(), actorID(r), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
