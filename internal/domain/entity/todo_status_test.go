package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTodoStatus(t *testing.T) {
	t.Parallel()

	status, err := ParseTodoStatus("inprogress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, status)

	status, err = ParseTodoStatus("2")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, status)

	_, err = ParseTodoStatus("Bogus")
	assert.Error(t, err)

	_, err = ParseTodoStatus("7")
	assert.Error(t, err)
}

func TestParseTodoPriority(t *testing.T) {
	t.Parallel()

	priority, err := ParseTodoPriority("HIGH")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, priority)

	_, err = ParseTodoPriority("urgent")
	assert.Error(t, err)
}

func TestTodoStatusJSONAcceptsNameOrNumber(t *testing.T) {
	t.Parallel()

	var byName TodoStatus
	require.NoError(t, json.Unmarshal([]byte(`"Completed"`), &byName))
	assert.Equal(t, StatusCompleted, byName)

	var byNumber TodoStatus
	require.NoError(t, json.Unmarshal([]byte(`1`), &byNumber))
	assert.Equal(t, StatusInProgress, byNumber)

	out, err := json.Marshal(StatusNotStarted)
	require.NoError(t, err)
	assert.Equal(t, `"NotStarted"`, string(out))
}
