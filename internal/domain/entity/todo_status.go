package entity

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TodoStatus is the lifecycle state of a TodoItem.
type TodoStatus int16

const (
	StatusNotStarted TodoStatus = iota
	StatusInProgress
	StatusCompleted
)

var statusNames = map[TodoStatus]string{
	StatusNotStarted: "NotStarted",
	StatusInProgress: "InProgress",
	StatusCompleted:  "Completed",
}

// String returns the canonical name of the status.
func (s TodoStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return "Unknown"
}

// Valid reports whether s is one of the defined statuses.
func (s TodoStatus) Valid() bool {
	_, ok := statusNames[s]

	return ok
}

// ParseTodoStatus accepts a status by name (case-insensitive) or by its
// numeric value, mirroring how the transport layer binds enums.
func ParseTodoStatus(raw string) (TodoStatus, error) {
	for status, name := range statusNames {
		if strings.EqualFold(raw, name) {
			return status, nil
		}
	}
	if n, err := strconv.Atoi(raw); err == nil {
		status := TodoStatus(n)
		if status.Valid() {
			return status, nil
		}
	}

	return 0, errors.Errorf("invalid status value: %q", raw)
}

// MarshalJSON serializes the status by name.
func (s TodoStatus) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.Errorf("invalid status value: %d", s)
	}

	return json.Marshal(s.String())
}

// UnmarshalJSON accepts either the name or the numeric value.
func (s *TodoStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Fall back to a bare number.
		var n int16
		if numErr := json.Unmarshal(data, &n); numErr != nil {
			return errors.Wrap(err, "status must be a string or number")
		}
		raw = strconv.Itoa(int(n))
	}

	parsed, err := ParseTodoStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}
