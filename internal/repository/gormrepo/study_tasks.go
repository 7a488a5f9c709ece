package gormrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"gorm.io/gorm"
)

type TasksG struct {
	db *gorm.DB
}

func NewTasksRepository(db *gorm.DB) *TasksG {
	return &TasksG{db: db}
}

func (t *TasksG) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.StudyTask, error) {
	q := t.db.WithContext(ctx)
	if filter.DayOfWeek != nil {
		q = q.Where("day_of_week = ?", *filter.DayOfWeek)
	}

	var recs []taskRecord
	if err := q.Order("created_at DESC, id DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list study tasks: %w", mapErr(err))
	}

	tasks := make([]models.StudyTask, 0, len(recs))
	for _, r := range recs {
		tasks = append(tasks, r.toModel())
	}
	return tasks, nil
}

func (t *TasksG) InsertTask(ctx context.Context, task models.NewStudyTask) (models.StudyTask, error) {
	rec := taskRecord{
		Title:           task.Title,
		Description:     task.Description,
		DayOfWeek:       task.DayOfWeek,
		Priority:        string(task.Priority),
		Completed:       task.Completed,
		DurationMinutes: task.DurationMinutes,
		Subject:         task.Subject,
	}
	if err := t.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return models.StudyTask{}, fmt.Errorf("failed to insert study task: %w", mapErr(err))
	}

	return rec.toModel(), nil
}

func (t *TasksG) PatchTask(ctx context.Context, id string, patch models.TaskPatch) (models.StudyTask, error) {
	cols := patch.Columns()
	cols["updated_at"] = time.Now()

	var rec taskRecord
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&taskRecord{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&rec, "id = ?", id).Error
	})
	if err != nil {
		return models.StudyTask{}, fmt.Errorf("failed to patch study task %s: %w", id, mapErr(err))
	}

	return rec.toModel(), nil
}

func (t *TasksG) RemoveTask(ctx context.Context, id string) error {
	if err := t.db.WithContext(ctx).Delete(&taskRecord{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to remove study task %s: %w", id, mapErr(err))
	}
	return nil
}
