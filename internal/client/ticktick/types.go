package ticktick

// Task priority values used by the TickTick open API.
const (
	PriorityNone   = 0
	PriorityLow    = 1
	PriorityMedium = 3
	PriorityHigh   = 5
)

type ChecklistItem struct {
	Id            string `json:"id,omitempty"`
	Title         string `json:"title,omitempty"`
	Status        int    `json:"status,omitempty"`
	IsAllDay      *bool  `json:"isAllDay,omitempty"`
	SortOrder     string `json:"sortOrder,omitempty"`
	TimeZone      string `json:"timeZone,omitempty"`
	StartDate     string `json:"startDate,omitempty"`
	CompletedTime string `json:"completedTime,omitempty"`
}

type Task struct {
	Id            string          `json:"id"`
	ProjectId     string          `json:"projectId,omitempty"`
	Title         string          `json:"title,omitempty"`
	Content       string          `json:"content,omitempty"`
	Desc          string          `json:"desc,omitempty"`
	IsAllDay      bool            `json:"isAllDay,omitempty"`
	StartDate     string          `json:"startDate,omitempty"`
	DueDate       string          `json:"dueDate,omitempty"`
	TimeZone      string          `json:"timeZone,omitempty"`
	Reminders     []string        `json:"reminders,omitempty"`
	RepeatFlag    string          `json:"repeatFlag,omitempty"`
	Priority      int             `json:"priority,omitempty"`
	SortOrder     string          `json:"sortOrder,omitempty"`
	Status        int             `json:"status,omitempty"`
	CompletedTime string          `json:"completedTime,omitempty"`
	Items         []ChecklistItem `json:"items,omitempty"`
}

type Project struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	ViewMode string `json:"viewMode,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Closed   bool   `json:"closed,omitempty"`
}

type Column struct {
	Id        string `json:"id"`
	ProjectId string `json:"projectId,omitempty"`
	Name      string `json:"name,omitempty"`
	SortOrder string `json:"sortOrder,omitempty"`
}

type ProjectData struct {
	Project Project  `json:"project"`
	Tasks   []Task   `json:"tasks"`
	Columns []Column `json:"columns"`
}

type GetTaskParams struct {
	ProjectId string `json:"projectId"`
	TaskId    string `json:"taskId"`
}

type CreateTaskParams struct {
	Title      string          `json:"title"`
	ProjectId  string          `json:"projectId"`
	Content    string          `json:"content,omitempty"`
	Desc       string          `json:"desc,omitempty"`
	IsAllDay   *bool           `json:"isAllDay,omitempty"`
	StartDate  string          `json:"startDate,omitempty"`
	DueDate    string          `json:"dueDate,omitempty"`
	TimeZone   string          `json:"timeZone,omitempty"`
	Reminders  []string        `json:"reminders,omitempty"`
	RepeatFlag string          `json:"repeatFlag,omitempty"`
	Priority   *int            `json:"priority,omitempty"`
	SortOrder  string          `json:"sortOrder,omitempty"`
	Items      []ChecklistItem `json:"items,omitempty"`
}

// UpdateTaskParams accepts the task identifier under either name: TaskId is
// the path-positioned field, Id the body-positioned one. The update endpoint
// needs the identifier in both places, so whichever is set fills in for the
// other.
type UpdateTaskParams struct {
	TaskId     string          `json:"taskId,omitempty"`
	Id         string          `json:"id,omitempty"`
	ProjectId  string          `json:"projectId"`
	Title      string          `json:"title,omitempty"`
	Content    string          `json:"content,omitempty"`
	Desc       string          `json:"desc,omitempty"`
	IsAllDay   *bool           `json:"isAllDay,omitempty"`
	StartDate  string          `json:"startDate,omitempty"`
	DueDate    string          `json:"dueDate,omitempty"`
	TimeZone   string          `json:"timeZone,omitempty"`
	Reminders  []string        `json:"reminders,omitempty"`
	RepeatFlag string          `json:"repeatFlag,omitempty"`
	Priority   *int            `json:"priority,omitempty"`
	SortOrder  string          `json:"sortOrder,omitempty"`
	Items      []ChecklistItem `json:"items,omitempty"`
}

// TaskRefParams identifies a single task for complete and delete calls.
type TaskRefParams struct {
	TaskId    string `json:"taskId"`
	ProjectId string `json:"projectId"`
}

type APIError struct {
	ErrorId      string `json:"errorId"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return "TickTick error: " + e.ErrorCode + ": " + e.ErrorMessage
	}
	return "TickTick error: " + e.ErrorMessage
}
