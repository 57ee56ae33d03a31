package entity

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TodoPriority is the urgency level of a TodoItem.
type TodoPriority int16

const (
	PriorityLow TodoPriority = iota
	PriorityMedium
	PriorityHigh
)

var priorityNames = map[TodoPriority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
}

// String returns the canonical name of the priority.
func (p TodoPriority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}

	return "Unknown"
}

// Valid reports whether p is one of the defined priorities.
func (p TodoPriority) Valid() bool {
	_, ok := priorityNames[p]

	return ok
}

// ParseTodoPriority accepts a priority by name (case-insensitive) or by its
// numeric value.
func ParseTodoPriority(raw string) (TodoPriority, error) {
	for priority, name := range priorityNames {
		if strings.EqualFold(raw, name) {
			return priority, nil
		}
	}
	if n, err := strconv.Atoi(raw); err == nil {
		priority := TodoPriority(n)
		if priority.Valid() {
			return priority, nil
		}
	}

	return 0, errors.Errorf("invalid priority value: %q", raw)
}

// MarshalJSON serializes the priority by name.
func (p TodoPriority) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, errors.Errorf("invalid priority value: %d", p)
	}

	return json.Marshal(p.String())
}

// UnmarshalJSON accepts either the name or the numeric value.
func (p *TodoPriority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		var n int16
		if numErr := json.Unmarshal(data, &n); numErr != nil {
			return errors.Wrap(err, "priority must be a string or number")
		}
		raw = strconv.Itoa(int(n))
	}

	parsed, err := ParseTodoPriority(raw)
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}
