package models

import "time"

type ChecklistItem struct {
	Id            string     `json:"id"`
	Title         string     `json:"title"`
	Status        int        `json:"status"`
	IsAllDay      bool       `json:"isAllDay"`
	SortOrder     string     `json:"sortOrder,omitempty"`
	TimeZone      string     `json:"timeZone,omitempty"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	CompletedTime *time.Time `json:"completedTime,omitempty"`
}

type Task struct {
	Id            string          `json:"id"`
	ProjectId     string          `json:"projectId"`
	Title         string          `json:"title"`
	Content       string          `json:"content,omitempty"`
	Desc          string          `json:"desc,omitempty"`
	IsAllDay      bool            `json:"isAllDay"`
	StartDate     *time.Time      `json:"startDate,omitempty"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	TimeZone      string          `json:"timeZone,omitempty"`
	Reminders     []string        `json:"reminders,omitempty"`
	RepeatFlag    string          `json:"repeatFlag,omitempty"`
	Priority      string          `json:"priority"`
	SortOrder     string          `json:"sortOrder,omitempty"`
	Status        int             `json:"status"`
	CompletedTime *time.Time      `json:"completedTime,omitempty"`
	Items         []ChecklistItem `json:"items,omitempty"`
}
