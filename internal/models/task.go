package models

import (
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const (
	TaskColumnTitle       = "title"
	TaskColumnDescription = "description"
	TaskColumnDayOfWeek   = "day_of_week"
	TaskColumnPriority    = "priority"
	TaskColumnCompleted   = "completed"
	TaskColumnDuration    = "duration_minutes"
	TaskColumnSubject     = "subject"
)

type StudyTask struct {
	ID              string    `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Description     *string   `db:"description" json:"description,omitempty"`
	DayOfWeek       int       `db:"day_of_week" json:"day_of_week"`
	Priority        Priority  `db:"priority" json:"priority"`
	Completed       bool      `db:"completed" json:"completed"`
	DurationMinutes *int      `db:"duration_minutes" json:"duration_minutes,omitempty"`
	Subject         string    `db:"subject" json:"subject"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// NewStudyTask holds the user supplied fields of a task. The store assigns the rest.
type NewStudyTask struct {
	Title           string   `json:"title" validate:"required"`
	Description     *string  `json:"description,omitempty"`
	DayOfWeek       int      `json:"day_of_week" validate:"min=0,max=6"`
	Priority        Priority `json:"priority" validate:"oneof=low medium high"`
	Completed       bool     `json:"completed"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	Subject         string   `json:"subject" validate:"required"`
}

// Normalize trims text fields and fills defaults in place.
func (t *NewStudyTask) Normalize() {
	t.Title = strings.TrimSpace(t.Title)
	t.Subject = strings.TrimSpace(t.Subject)
	t.Description = trimOptional(t.Description)
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
}

// TaskFilter narrows a task listing. A nil DayOfWeek lists every day.
type TaskFilter struct {
	DayOfWeek *int
}

func DayFilter(day int) TaskFilter {
	return TaskFilter{DayOfWeek: &day}
}

// TaskPatch is one of TaskEdit or TaskCompletion.
type TaskPatch interface {
	// Columns returns the store columns the patch writes, keyed by column name.
	Columns() map[string]any
	taskPatch()
}

// TaskEdit changes the user editable fields of a task. Nil fields are left untouched;
// an empty Description clears it.
type TaskEdit struct {
	Title           *string   `json:"title,omitempty" validate:"omitempty,min=1"`
	Description     *string   `json:"description,omitempty"`
	DayOfWeek       *int      `json:"day_of_week,omitempty" validate:"omitempty,min=0,max=6"`
	Priority        *Priority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DurationMinutes *int      `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	Subject         *string   `json:"subject,omitempty" validate:"omitempty,min=1"`
}

func (e *TaskEdit) Normalize() {
	e.Title = trimPtr(e.Title)
	e.Subject = trimPtr(e.Subject)
	e.Description = trimPtr(e.Description)
}

func (e TaskEdit) Empty() bool {
	return len(e.Columns()) == 0
}

func (e TaskEdit) Columns() map[string]any {
	cols := make(map[string]any)
	if e.Title != nil {
		cols[TaskColumnTitle] = *e.Title
	}
	if e.Description != nil {
		if *e.Description == "" {
			cols[TaskColumnDescription] = nil
		} else {
			cols[TaskColumnDescription] = *e.Description
		}
	}
	if e.DayOfWeek != nil {
		cols[TaskColumnDayOfWeek] = *e.DayOfWeek
	}
	if e.Priority != nil {
		cols[TaskColumnPriority] = string(*e.Priority)
	}
	if e.DurationMinutes != nil {
		cols[TaskColumnDuration] = *e.DurationMinutes
	}
	if e.Subject != nil {
		cols[TaskColumnSubject] = *e.Subject
	}
	return cols
}

func (TaskEdit) taskPatch() {}

type TaskCompletion struct {
	Completed bool `json:"completed"`
}

func (c TaskCompletion) Columns() map[string]any {
	return map[string]any{TaskColumnCompleted: c.Completed}
}

func (TaskCompletion) taskPatch() {}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func trimOptional(s *string) *string {
	s = trimPtr(s)
	if s == nil || *s == "" {
		return nil
	}
	return s
}
