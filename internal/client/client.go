package client

import (
	"context"

	"github.com/TWRT/ticktick-connector/internal/client/ticktick"
)

type TaskClient interface {
	GetTask(ctx context.Context, params ticktick.GetTaskParams) (*ticktick.Task, error)
	CreateTask(ctx context.Context, params ticktick.CreateTaskParams) (*ticktick.Task, error)
	UpdateTask(ctx context.Context, params ticktick.UpdateTaskParams) (*ticktick.Task, error)
	CompleteTask(ctx context.Context, params ticktick.TaskRefParams) error
	DeleteTask(ctx context.Context, params ticktick.TaskRefParams) error
}

type ProjectProvider interface {
	GetProjects(ctx context.Context) ([]ticktick.Project, error)
	GetProject(ctx context.Context, projectId string) (*ticktick.Project, error)
	GetProjectWithData(ctx context.Context, projectId string) (*ticktick.ProjectData, error)
}

type ConnectorProvider interface {
	TaskClient
	ProjectProvider
}

var _ ConnectorProvider = (*ticktick.TickTickClient)(nil)
