package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/TWRT/ticktick-connector/internal/client/ticktick"
	"github.com/TWRT/ticktick-connector/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	projectId := r.PathValue("projectId")
	taskId := r.PathValue("taskId")

	task, err := h.taskService.GetTask(r.Context(), projectId, taskId)
	if err != nil {
		writeError(w, err, "Error trying to get task")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"task": task,
	})
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var params ticktick.CreateTaskParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), params)
	if err != nil {
		writeError(w, err, "Error trying to create task")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"task": task,
	})
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var params ticktick.UpdateTaskParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}
	if params.TaskId == "" {
		params.TaskId = r.PathValue("id")
	}

	task, err := h.taskService.UpdateTask(r.Context(), params)
	if err != nil {
		writeError(w, err, "Error trying to update task")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"task": task,
	})
}

func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	projectId := r.PathValue("projectId")
	taskId := r.PathValue("taskId")

	if err := h.taskService.CompleteTask(r.Context(), projectId, taskId); err != nil {
		writeError(w, err, "Error trying to complete task")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	projectId := r.PathValue("projectId")
	taskId := r.PathValue("taskId")

	if err := h.taskService.DeleteTask(r.Context(), projectId, taskId); err != nil {
		writeError(w, err, "Error trying to delete task")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) ListOperations(w http.ResponseWriter, r *http.Request) {
	ops, err := h.taskService.ListOperations(100)
	if err != nil {
		writeError(w, err, "Error trying to list operations")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"operations": ops,
	})
}
