package service

import (
	"fmt"
	"time"

	"github.com/TWRT/ticktick-connector/internal/client/ticktick"
	"github.com/TWRT/ticktick-connector/internal/models"
)

// Layouts the remote service is known to emit. The first one also covers the
// normalized completedTime strings.
var timeLayouts = []string{
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05Z0700",
	time.RFC3339,
}

func parseTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}
	return nil, fmt.Errorf("parse timestamp (ticktick): unrecognized value %q", s)
}

func priorityName(p int) string {
	switch p {
	case ticktick.PriorityLow:
		return "Low"
	case ticktick.PriorityMedium:
		return "Medium"
	case ticktick.PriorityHigh:
		return "High"
	}
	return "None"
}

func taskToModel(task *ticktick.Task) (*models.Task, error) {
	startDate, err := parseTime(task.StartDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseTime(task.DueDate)
	if err != nil {
		return nil, err
	}
	completedTime, err := parseTime(task.CompletedTime)
	if err != nil {
		return nil, err
	}

	items := make([]models.ChecklistItem, len(task.Items))
	for i, item := range task.Items {
		converted, err := itemToModel(item)
		if err != nil {
			return nil, err
		}
		items[i] = *converted
	}
	if len(items) == 0 {
		items = nil
	}

	return &models.Task{
		Id:            task.Id,
		ProjectId:     task.ProjectId,
		Title:         task.Title,
		Content:       task.Content,
		Desc:          task.Desc,
		IsAllDay:      task.IsAllDay,
		StartDate:     startDate,
		DueDate:       dueDate,
		TimeZone:      task.TimeZone,
		Reminders:     task.Reminders,
		RepeatFlag:    task.RepeatFlag,
		Priority:      priorityName(task.Priority),
		SortOrder:     task.SortOrder,
		Status:        task.Status,
		CompletedTime: completedTime,
		Items:         items,
	}, nil
}

func itemToModel(item ticktick.ChecklistItem) (*models.ChecklistItem, error) {
	startDate, err := parseTime(item.StartDate)
	if err != nil {
		return nil, err
	}
	completedTime, err := parseTime(item.CompletedTime)
	if err != nil {
		return nil, err
	}

	isAllDay := false
	if item.IsAllDay != nil {
		isAllDay = *item.IsAllDay
	}

	return &models.ChecklistItem{
		Id:            item.Id,
		Title:         item.Title,
		Status:        item.Status,
		IsAllDay:      isAllDay,
		SortOrder:     item.SortOrder,
		TimeZone:      item.TimeZone,
		StartDate:     startDate,
		CompletedTime: completedTime,
	}, nil
}

func projectToModel(project ticktick.Project) models.Project {
	return models.Project{
		Id:       project.Id,
		Name:     project.Name,
		Color:    project.Color,
		ViewMode: project.ViewMode,
		Kind:     project.Kind,
		Closed:   project.Closed,
	}
}

func columnToModel(column ticktick.Column) models.Column {
	return models.Column{
		Id:        column.Id,
		ProjectId: column.ProjectId,
		Name:      column.Name,
		SortOrder: column.SortOrder,
	}
}
