package api

import (
	"database/sql"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/TWRT/ticktick-connector/internal/api/handlers"
	"github.com/TWRT/ticktick-connector/internal/client/ticktick"
	"github.com/TWRT/ticktick-connector/internal/repository"
	"github.com/TWRT/ticktick-connector/internal/service"
)

func SetupRouter(db *sql.DB, ticktickToken, baseUrl string, logger *log.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	var opts []ticktick.Option
	if baseUrl != "" {
		opts = append(opts, ticktick.WithBaseUrl(baseUrl))
	}
	ticktickClient := ticktick.NewTickTickClient(ticktickToken, opts...)

	var journal *repository.OperationRepository
	if db != nil {
		journal = repository.NewOperationRepository(db)
	}

	taskService := service.NewTaskService(ticktickClient, journal, logger)
	projectService := service.NewProjectService(ticktickClient)

	taskHandler := handlers.NewTaskHandler(taskService)
	projectHandler := handlers.NewProjectHandler(projectService)

	mux.HandleFunc("GET /projects", projectHandler.GetProjects)
	mux.HandleFunc("GET /projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("GET /projects/{id}/data", projectHandler.GetProjectData)

	mux.HandleFunc("GET /projects/{projectId}/tasks/{taskId}", taskHandler.GetTask)
	mux.HandleFunc("POST /tasks", taskHandler.CreateTask)
	mux.HandleFunc("POST /tasks/{id}", taskHandler.UpdateTask)
	mux.HandleFunc("POST /projects/{projectId}/tasks/{taskId}/complete", taskHandler.CompleteTask)
	mux.HandleFunc("DELETE /projects/{projectId}/tasks/{taskId}", taskHandler.DeleteTask)

	mux.HandleFunc("GET /operations", taskHandler.ListOperations)

	return mux
}
