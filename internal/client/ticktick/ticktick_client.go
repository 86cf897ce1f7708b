package ticktick

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/TWRT/ticktick-connector/internal/schema"
)

const defaultBaseUrl = "https://api.ticktick.com/open/v1"

type TickTickClient struct {
	baseUrl    string
	token      string
	httpClient *resty.Client
}

type Option func(*TickTickClient)

// WithBaseUrl points the client at a different API root. Used by tests and
// by deployments sitting behind a proxy.
func WithBaseUrl(baseUrl string) Option {
	return func(c *TickTickClient) {
		c.baseUrl = baseUrl
	}
}

// WithHTTPClient swaps the underlying transport. Retry, timeout and
// cancellation policy all live there, not in this layer.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *TickTickClient) {
		c.httpClient = resty.NewWithClient(hc)
	}
}

func NewTickTickClient(token string, opts ...Option) *TickTickClient {
	c := &TickTickClient{
		baseUrl: defaultBaseUrl,
		token:   token,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = resty.NewWithClient(&http.Client{Timeout: 10 * time.Second})
	}
	c.httpClient.
		SetBaseURL(c.baseUrl).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+c.token)
	return c
}

func (c *TickTickClient) GetTask(ctx context.Context, params GetTaskParams) (*Task, error) {
	if err := getTaskParamsSchema.Validate(params); err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/project/"+params.ProjectId+"/task/"+params.TaskId, nil)
	if err != nil {
		return nil, fmt.Errorf("get task (ticktick): %w", err)
	}

	return decodeTask(body, true)
}

func (c *TickTickClient) CreateTask(ctx context.Context, params CreateTaskParams) (*Task, error) {
	if err := createTaskParamsSchema.Validate(params); err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/task", params)
	if err != nil {
		return nil, fmt.Errorf("create task (ticktick): %w", err)
	}

	// Known inconsistency kept for compatibility: unlike the fetch path,
	// create and update responses are not run through completedTime
	// normalization before validation.
	return decodeTask(body, false)
}

func (c *TickTickClient) UpdateTask(ctx context.Context, params UpdateTaskParams) (*Task, error) {
	if err := updateTaskParamsSchema.Validate(params); err != nil {
		return nil, err
	}

	// The endpoint wants the identifier in the URL path and in the body's
	// "id" field. The path prefers taskId, the body prefers id, and either
	// field fills in for the other when empty.
	pathId := firstNonEmpty(params.TaskId, params.Id)
	if pathId == "" {
		return nil, &schema.ValidationError{
			Details: []string{"taskId: a task identifier is required (taskId or id)"},
		}
	}
	reqBody := params
	reqBody.Id = firstNonEmpty(params.Id, params.TaskId)
	reqBody.TaskId = ""

	body, err := c.doRequest(ctx, http.MethodPost, "/task/"+pathId, reqBody)
	if err != nil {
		return nil, fmt.Errorf("update task (ticktick): %w", err)
	}

	return decodeTask(body, false)
}

func (c *TickTickClient) CompleteTask(ctx context.Context, params TaskRefParams) error {
	if err := taskRefParamsSchema.Validate(params); err != nil {
		return err
	}

	_, err := c.doRequest(ctx, http.MethodPost, "/project/"+params.ProjectId+"/task/"+params.TaskId+"/complete", nil)
	if err != nil {
		return fmt.Errorf("complete task (ticktick): %w", err)
	}
	return nil
}

func (c *TickTickClient) DeleteTask(ctx context.Context, params TaskRefParams) error {
	if err := taskRefParamsSchema.Validate(params); err != nil {
		return err
	}

	_, err := c.doRequest(ctx, http.MethodDelete, "/project/"+params.ProjectId+"/task/"+params.TaskId, nil)
	if err != nil {
		return fmt.Errorf("delete task (ticktick): %w", err)
	}
	return nil
}

func (c *TickTickClient) GetProjects(ctx context.Context) ([]Project, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/project", nil)
	if err != nil {
		return nil, fmt.Errorf("get projects (ticktick): %w", err)
	}

	var raw []any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse projects (ticktick): %w", err)
	}
	if err := projectsResponseSchema.Validate(raw); err != nil {
		return nil, err
	}

	var projects []Project
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, fmt.Errorf("parse projects (ticktick): %w", err)
	}
	return projects, nil
}

func (c *TickTickClient) GetProject(ctx context.Context, projectId string) (*Project, error) {
	if projectId == "" {
		return nil, &schema.ValidationError{Details: []string{"projectId: required"}}
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/project/"+projectId, nil)
	if err != nil {
		return nil, fmt.Errorf("get project (ticktick): %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse project (ticktick): %w", err)
	}
	if err := projectResponseSchema.Validate(raw); err != nil {
		return nil, err
	}

	var project Project
	if err := json.Unmarshal(body, &project); err != nil {
		return nil, fmt.Errorf("parse project (ticktick): %w", err)
	}
	return &project, nil
}

// GetProjectWithData fetches a project together with its undone tasks and
// columns. Tasks go through the same completedTime normalization as GetTask
// before validation.
func (c *TickTickClient) GetProjectWithData(ctx context.Context, projectId string) (*ProjectData, error) {
	if projectId == "" {
		return nil, &schema.ValidationError{Details: []string{"projectId: required"}}
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/project/"+projectId+"/data", nil)
	if err != nil {
		return nil, fmt.Errorf("get project data (ticktick): %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse project data (ticktick): %w", err)
	}
	if tasks, ok := raw["tasks"].([]any); ok {
		for _, t := range tasks {
			if m, ok := t.(map[string]any); ok {
				normalizeTaskTimestamps(m)
				if err := taskResponseSchema.Validate(m); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := projectDataResponseSchema.Validate(raw); err != nil {
		return nil, err
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("reencode project data (ticktick): %w", err)
	}
	var data ProjectData
	if err := json.Unmarshal(buf, &data); err != nil {
		return nil, fmt.Errorf("parse project data (ticktick): %w", err)
	}
	return &data, nil
}

// doRequest issues a single call and hands back the response body. Transport
// errors and non-2xx statuses come back as-is; nothing is retried or
// recovered here.
func (c *TickTickClient) doRequest(ctx context.Context, method, path string, reqBody any) ([]byte, error) {
	req := c.httpClient.R().SetContext(ctx)
	if reqBody != nil {
		req.SetBody(reqBody)
	}

	var resp *resty.Response
	var err error
	switch method {
	case http.MethodGet:
		resp, err = req.Get(path)
	case http.MethodPost:
		resp, err = req.Post(path)
	case http.MethodDelete:
		resp, err = req.Delete(path)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		var apiErr APIError
		if jsonErr := json.Unmarshal(resp.Body(), &apiErr); jsonErr == nil && apiErr.ErrorMessage != "" {
			return nil, &apiErr
		}
		return nil, fmt.Errorf("API error status: %d", resp.StatusCode())
	}

	return resp.Body(), nil
}

// decodeTask turns a raw task response into a Task, normalizing completion
// timestamps first when the operation calls for it, then validating.
func decodeTask(body []byte, normalize bool) (*Task, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse task (ticktick): %w", err)
	}

	if normalize {
		raw = normalizeTaskTimestamps(raw)
	}
	if err := taskResponseSchema.Validate(raw); err != nil {
		return nil, err
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("reencode task (ticktick): %w", err)
	}
	var task Task
	if err := json.Unmarshal(buf, &task); err != nil {
		return nil, fmt.Errorf("parse task (ticktick): %w", err)
	}
	return &task, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
