package handlers

import (
	"net/http"

	"github.com/TWRT/ticktick-connector/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.GetProjects(r.Context())
	if err != nil {
		writeError(w, err, "Error trying to get projects")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"projects": projects,
	})
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectId := r.PathValue("id")

	project, err := h.projectService.GetProject(r.Context(), projectId)
	if err != nil {
		writeError(w, err, "Error trying to get project")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"project": project,
	})
}

func (h *ProjectHandler) GetProjectData(w http.ResponseWriter, r *http.Request) {
	projectId := r.PathValue("id")

	data, err := h.projectService.GetProjectWithData(r.Context(), projectId)
	if err != nil {
		writeError(w, err, "Error trying to get project data")
		return
	}
	writeJSON(w, http.StatusOK, data)
}
