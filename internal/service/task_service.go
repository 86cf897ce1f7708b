package service

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/TWRT/ticktick-connector/internal/client"
	"github.com/TWRT/ticktick-connector/internal/client/ticktick"
	"github.com/TWRT/ticktick-connector/internal/models"
	"github.com/TWRT/ticktick-connector/internal/repository"
)

type TaskService struct {
	taskClient client.TaskClient
	journal    *repository.OperationRepository
	logger     *log.Logger
}

func NewTaskService(
	taskClient client.TaskClient,
	journal *repository.OperationRepository,
	logger *log.Logger,
) *TaskService {
	if logger == nil {
		logger = log.Default()
	}
	return &TaskService{
		taskClient: taskClient,
		journal:    journal,
		logger:     logger,
	}
}

func (s *TaskService) GetTask(ctx context.Context, projectId, taskId string) (*models.Task, error) {
	task, err := s.taskClient.GetTask(ctx, ticktick.GetTaskParams{
		ProjectId: projectId,
		TaskId:    taskId,
	})
	if err != nil {
		return nil, err
	}
	return taskToModel(task)
}

func (s *TaskService) CreateTask(ctx context.Context, params ticktick.CreateTaskParams) (*models.Task, error) {
	task, err := s.taskClient.CreateTask(ctx, params)
	s.record("create", params.ProjectId, taskIdOf(task), err)
	if err != nil {
		return nil, err
	}
	return taskToModel(task)
}

func (s *TaskService) UpdateTask(ctx context.Context, params ticktick.UpdateTaskParams) (*models.Task, error) {
	taskId := params.TaskId
	if taskId == "" {
		taskId = params.Id
	}
	task, err := s.taskClient.UpdateTask(ctx, params)
	s.record("update", params.ProjectId, taskId, err)
	if err != nil {
		return nil, err
	}
	return taskToModel(task)
}

func (s *TaskService) CompleteTask(ctx context.Context, projectId, taskId string) error {
	err := s.taskClient.CompleteTask(ctx, ticktick.TaskRefParams{
		TaskId:    taskId,
		ProjectId: projectId,
	})
	s.record("complete", projectId, taskId, err)
	return err
}

func (s *TaskService) DeleteTask(ctx context.Context, projectId, taskId string) error {
	err := s.taskClient.DeleteTask(ctx, ticktick.TaskRefParams{
		TaskId:    taskId,
		ProjectId: projectId,
	})
	s.record("delete", projectId, taskId, err)
	return err
}

func (s *TaskService) ListOperations(limit int) ([]repository.Operation, error) {
	if s.journal == nil {
		return nil, nil
	}
	return s.journal.ListRecent(limit)
}

// record appends the outcome of a mutating call to the operation journal.
// Journal failures are logged and swallowed so they never fail the call
// itself.
func (s *TaskService) record(operation, projectId, taskId string, opErr error) {
	if s.journal == nil {
		return
	}
	op := &repository.Operation{
		Operation: operation,
		ProjectID: projectId,
		TaskID:    taskId,
		Status:    "success",
	}
	if opErr != nil {
		op.Status = "failed"
		op.ErrorMessage = opErr.Error()
	}
	if err := s.journal.Record(op); err != nil {
		s.logger.Warn("failed to record operation", "operation", operation, "error", err)
	}
}

func taskIdOf(task *ticktick.Task) string {
	if task == nil {
		return ""
	}
	return task.Id
}
