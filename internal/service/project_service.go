package service

import (
	"context"

	"github.com/TWRT/ticktick-connector/internal/client"
	"github.com/TWRT/ticktick-connector/internal/models"
)

type ProjectService struct {
	projectProvider client.ProjectProvider
}

func NewProjectService(projectProvider client.ProjectProvider) *ProjectService {
	return &ProjectService{
		projectProvider: projectProvider,
	}
}

func (s *ProjectService) GetProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectProvider.GetProjects(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		result = append(result, projectToModel(p))
	}
	return result, nil
}

func (s *ProjectService) GetProject(ctx context.Context, projectId string) (*models.Project, error) {
	project, err := s.projectProvider.GetProject(ctx, projectId)
	if err != nil {
		return nil, err
	}
	converted := projectToModel(*project)
	return &converted, nil
}

func (s *ProjectService) GetProjectWithData(ctx context.Context, projectId string) (*models.ProjectData, error) {
	data, err := s.projectProvider.GetProjectWithData(ctx, projectId)
	if err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(data.Tasks))
	for i := range data.Tasks {
		task, err := taskToModel(&data.Tasks[i])
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	columns := make([]models.Column, 0, len(data.Columns))
	for _, c := range data.Columns {
		columns = append(columns, columnToModel(c))
	}

	return &models.ProjectData{
		Project: projectToModel(data.Project),
		Tasks:   tasks,
		Columns: columns,
	}, nil
}
