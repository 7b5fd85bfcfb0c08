package http

import (
	"net/http"

	"github.com/MKhiriev/brand-snap/internal/utils"
	"github.com/MKhiriev/brand-snap/models"
)

// createProject handles POST /api/projects?userId=.
func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var project models.Project
	if err = decodeBody(r, &project); err != nil {
		writeError(w, r, err)
		return
	}
	project.UserID = userID

	created, err := h.services.ProjectService.Create(r.Context(), actorID(r), project)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

// listProjects handles GET /api/projects?userId=.
func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	projects, err := h.services.ProjectService.ListByUser(r.Context(), actorID(r), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.Get(r.Context(), actorID(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, project, http.StatusOK)
}

// updateProject replaces title and description. Owner and creation time are
// kept.
func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var project models.Project
	if err = decodeBody(r, &project); err != nil {
		writeError(w, r, err)
		return
	}
	project.ID = id

	updated, err := h.services.ProjectService.Update(r.Context(), actorID(r), project)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ProjectService.Delete(r.Context(), actorID(r), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
