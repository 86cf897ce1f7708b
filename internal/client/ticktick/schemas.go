package ticktick

import "github.com/TWRT/ticktick-connector/internal/schema"

var requiredId = map[string]any{"type": "string", "minLength": 1}

var checklistItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":            map[string]any{"type": "string"},
		"title":         map[string]any{"type": "string"},
		"status":        map[string]any{"type": "integer"},
		"isAllDay":      map[string]any{"type": "boolean"},
		"sortOrder":     map[string]any{"type": "string"},
		"timeZone":      map[string]any{"type": "string"},
		"startDate":     map[string]any{"type": "string"},
		"completedTime": map[string]any{"type": "string"},
	},
}

var taskFieldsSchema = map[string]any{
	"title":      map[string]any{"type": "string"},
	"content":    map[string]any{"type": "string"},
	"desc":       map[string]any{"type": "string"},
	"isAllDay":   map[string]any{"type": "boolean"},
	"startDate":  map[string]any{"type": "string"},
	"dueDate":    map[string]any{"type": "string"},
	"timeZone":   map[string]any{"type": "string"},
	"reminders":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	"repeatFlag": map[string]any{"type": "string"},
	"priority":   map[string]any{"type": "integer", "enum": []any{PriorityNone, PriorityLow, PriorityMedium, PriorityHigh}},
	"sortOrder":  map[string]any{"type": "string"},
	"items":      map[string]any{"type": "array", "items": checklistItemSchema},
}

var getTaskParamsSchema = schema.Schema{
	"type": "object",
	"properties": map[string]any{
		"projectId": requiredId,
		"taskId":    requiredId,
	},
	"required": []any{"projectId", "taskId"},
}

// Title is required on create, so it needs minLength too: the params struct
// marshals an omitted title as "", which would satisfy a bare string check.
var createTaskParamsSchema = schema.Schema{
	"type": "object",
	"properties": mergeProperties(taskFieldsSchema, map[string]any{
		"projectId": requiredId,
		"title":     requiredId,
	}),
	"required": []any{"title", "projectId"},
}

// Unlike create, title stays a plain string here: it is optional on update
// and an empty value must not be rejected.
var updateTaskParamsSchema = schema.Schema{
	"type": "object",
	"properties": mergeProperties(taskFieldsSchema, map[string]any{
		"projectId": requiredId,
		"taskId":    map[string]any{"type": "string"},
		"id":        map[string]any{"type": "string"},
	}),
	"required": []any{"projectId"},
}

var taskRefParamsSchema = schema.Schema{
	"type": "object",
	"properties": map[string]any{
		"taskId":    requiredId,
		"projectId": requiredId,
	},
	"required": []any{"taskId", "projectId"},
}

// taskResponseSchema checks the shape handed back to callers. completedTime
// is a string here: fetch paths normalize epoch values before validation, and
// write paths never carry a completion timestamp back.
var taskResponseSchema = schema.Schema{
	"type": "object",
	"properties": mergeProperties(taskFieldsSchema, map[string]any{
		"id":            requiredId,
		"projectId":     map[string]any{"type": "string"},
		"status":        map[string]any{"type": "integer"},
		"completedTime": map[string]any{"type": "string"},
	}),
	"required": []any{"id"},
}

var projectSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "string"},
		"name":     map[string]any{"type": "string"},
		"color":    map[string]any{"type": []any{"string", "null"}},
		"viewMode": map[string]any{"type": "string"},
		"kind":     map[string]any{"type": "string"},
		"closed":   map[string]any{"type": []any{"boolean", "null"}},
	},
	"required": []any{"id", "name"},
}

var projectsResponseSchema = schema.Schema{
	"type":  "array",
	"items": projectSchema,
}

var projectResponseSchema = schema.Schema(projectSchema)

var projectDataResponseSchema = schema.Schema{
	"type": "object",
	"properties": map[string]any{
		"project": projectSchema,
		"tasks":   map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
		"columns": map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
	},
	"required": []any{"project"},
}

func mergeProperties(base map[string]any, extra map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
