package repository

import (
	"context"
	"fmt"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
)

const taskColumns = `id, title, description, day_of_week, priority, completed, duration_minutes, subject, created_at, updated_at`

type TasksR struct {
	db    QueryI
	newID func() string
}

func NewTasksRepository(db QueryI) *TasksR {
	return &TasksR{db: db, newID: newID}
}

func (t *TasksR) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.StudyTask, error) {
	query := `SELECT ` + taskColumns + ` FROM study_tasks`
	args := make([]any, 0, 1)
	if filter.DayOfWeek != nil {
		query += ` WHERE day_of_week = $1`
		args = append(args, *filter.DayOfWeek)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	tasks := make([]models.StudyTask, 0)
	if err := t.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list study tasks: %w", mapErr(err))
	}

	return tasks, nil
}

func (t *TasksR) InsertTask(ctx context.Context, task models.NewStudyTask) (models.StudyTask, error) {
	query := `
		INSERT INTO study_tasks (id, title, description, day_of_week, priority, completed, duration_minutes, subject, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + taskColumns

	var created models.StudyTask
	err := t.db.GetContext(ctx, &created, query,
		t.newID(), task.Title, task.Description, task.DayOfWeek, task.Priority, task.Completed, task.DurationMinutes, task.Subject)
	if err != nil {
		return models.StudyTask{}, fmt.Errorf("failed to insert study task: %w", mapErr(err))
	}

	return created, nil
}

func (t *TasksR) PatchTask(ctx context.Context, id string, patch models.TaskPatch) (models.StudyTask, error) {
	set, args := setClause(patch.Columns(), 1)
	query := fmt.Sprintf(`UPDATE study_tasks SET %s WHERE id = $%d RETURNING %s`, set, len(args)+1, taskColumns)
	args = append(args, id)

	var updated models.StudyTask
	if err := t.db.GetContext(ctx, &updated, query, args...); err != nil {
		return models.StudyTask{}, fmt.Errorf("failed to patch study task %s: %w", id, mapErr(err))
	}

	return updated, nil
}

// RemoveTask deletes the task. Removing a missing id is not an error.
func (t *TasksR) RemoveTask(ctx context.Context, id string) error {
	_, err := t.db.ExecContext(ctx, `DELETE FROM study_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to remove study task %s: %w", id, mapErr(err))
	}

	return nil
}
