package ticktick

import (
	"encoding/json"
	"time"
)

const completedTimeLayout = "2006-01-02T15:04:05.000Z"

// normalizeTaskTimestamps rewrites a numeric epoch-millisecond completedTime
// on a raw task payload, and on each of its checklist items, into an ISO 8601
// string. Values that are already strings, or absent, stay untouched, and so
// does every other field. A nil payload passes through as-is.
func normalizeTaskTimestamps(raw map[string]any) map[string]any {
	if raw == nil {
		return nil
	}
	normalizeCompletedTime(raw)
	items, ok := raw["items"].([]any)
	if !ok {
		return raw
	}
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			normalizeCompletedTime(m)
		}
	}
	return raw
}

func normalizeCompletedTime(m map[string]any) {
	v, ok := m["completedTime"]
	if !ok {
		return
	}
	// Zero is a valid timestamp (epoch start), not an absent value.
	ms, ok := epochMillis(v)
	if !ok {
		return
	}
	m["completedTime"] = time.UnixMilli(ms).UTC().Format(completedTimeLayout)
}

func epochMillis(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case json.Number:
		ms, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return ms, true
	case int64:
		return n, true
	case int:
		return int64(n), true
	}
	return 0, false
}
