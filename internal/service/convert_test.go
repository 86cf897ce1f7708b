package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TWRT/ticktick-connector/internal/client/ticktick"
)

func TestParseTime(t *testing.T) {
	t.Run("empty string means absent", func(t *testing.T) {
		parsed, err := parseTime("")
		require.NoError(t, err)
		assert.Nil(t, parsed)
	})

	t.Run("normalized completedTime layout", func(t *testing.T) {
		parsed, err := parseTime("1970-01-01T00:00:00.000Z")
		require.NoError(t, err)
		require.NotNil(t, parsed)
		assert.True(t, parsed.Equal(time.UnixMilli(0)))
	})

	t.Run("ticktick offset layout", func(t *testing.T) {
		parsed, err := parseTime("2019-11-13T03:00:00+0000")
		require.NoError(t, err)
		require.NotNil(t, parsed)
		assert.Equal(t, 2019, parsed.Year())
		assert.Equal(t, time.November, parsed.Month())
	})

	t.Run("unrecognized value errors", func(t *testing.T) {
		_, err := parseTime("yesterday")
		assert.Error(t, err)
	})
}

func TestPriorityName(t *testing.T) {
	assert.Equal(t, "None", priorityName(ticktick.PriorityNone))
	assert.Equal(t, "Low", priorityName(ticktick.PriorityLow))
	assert.Equal(t, "Medium", priorityName(ticktick.PriorityMedium))
	assert.Equal(t, "High", priorityName(ticktick.PriorityHigh))
	assert.Equal(t, "None", priorityName(42))
}

func TestTaskToModel(t *testing.T) {
	isAllDay := true
	task, err := taskToModel(&ticktick.Task{
		Id:            "1",
		ProjectId:     "p1",
		Title:         "Buy milk",
		Priority:      ticktick.PriorityHigh,
		StartDate:     "2019-11-13T03:00:00+0000",
		CompletedTime: "2023-11-14T22:13:20.000Z",
		Items: []ticktick.ChecklistItem{
			{Id: "s1", Title: "gallon", IsAllDay: &isAllDay, CompletedTime: "1970-01-01T00:00:00.000Z"},
			{Id: "s2", Title: "oat"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "High", task.Priority)
	require.NotNil(t, task.StartDate)
	require.NotNil(t, task.CompletedTime)
	assert.Equal(t, 2023, task.CompletedTime.Year())

	require.Len(t, task.Items, 2)
	assert.True(t, task.Items[0].IsAllDay)
	require.NotNil(t, task.Items[0].CompletedTime)
	assert.True(t, task.Items[0].CompletedTime.Equal(time.UnixMilli(0)))
	assert.Nil(t, task.Items[1].CompletedTime)
}
