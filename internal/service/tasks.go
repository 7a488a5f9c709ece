package service

import (
	"context"
	"fmt"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"github.com/LaryssaGabi/StudyFlow/pkg/validator"
	"go.uber.org/zap"
)

type TaskS struct {
	store    TaskStore
	notifier Notifier
	log      *zap.Logger
	cache    *listCache[models.StudyTask]
}

func NewTaskService(store TaskStore, notifier Notifier, log *zap.Logger) *TaskS {
	return &TaskS{
		store:    store,
		notifier: notifier,
		log:      log,
		cache:    newListCache(func(t models.StudyTask) string { return t.ID }),
	}
}

// FetchTasks loads the tasks matching filter, newest first, and makes them the local list.
func (t *TaskS) FetchTasks(ctx context.Context, filter models.TaskFilter) ([]models.StudyTask, error) {
	seq := t.cache.beginFetch()
	defer t.cache.endFetch()

	tasks, err := t.store.ListTasks(ctx, filter)
	if err != nil {
		t.log.Error("failed to fetch study tasks", zap.Error(err))
		t.notifier.Notify(ctx, models.Failure("Failed to load tasks"))
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}

	if !t.cache.commitFetch(seq, tasks, taskMatcher(filter)) {
		t.log.Debug("superseded task fetch discarded", zap.Uint64("seq", seq))
	}

	return tasks, nil
}

func (t *TaskS) CreateTask(ctx context.Context, task models.NewStudyTask) (models.StudyTask, error) {
	task.Normalize()
	if err := validator.ValidateStruct(task); err != nil {
		return models.StudyTask{}, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	seq := t.cache.beginWrite()
	created, err := t.store.InsertTask(ctx, task)
	if err != nil {
		t.log.Error("failed to create study task", zap.String("title", task.Title), zap.Error(err))
		t.notifier.Notify(ctx, models.Failure("Failed to add task"))
		return models.StudyTask{}, fmt.Errorf("create task: %w", err)
	}

	t.cache.prepend(seq, created)
	t.notifier.Notify(ctx, models.Success("Task added"))

	return created, nil
}

func (t *TaskS) UpdateTask(ctx context.Context, id string, edit models.TaskEdit) (models.StudyTask, error) {
	edit.Normalize()
	if edit.Empty() {
		return models.StudyTask{}, fmt.Errorf("%w: nothing to update", models.ErrInvalidInput)
	}
	if err := validator.ValidateStruct(edit); err != nil {
		return models.StudyTask{}, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	return t.update(ctx, id, edit)
}

func (t *TaskS) ToggleTask(ctx context.Context, id string, completed bool) (models.StudyTask, error) {
	return t.update(ctx, id, models.TaskCompletion{Completed: completed})
}

func (t *TaskS) update(ctx context.Context, id string, patch models.TaskPatch) (models.StudyTask, error) {
	seq := t.cache.beginWrite()
	updated, err := t.store.PatchTask(ctx, id, patch)
	if err != nil {
		t.log.Error("failed to update study task", zap.String("task_id", id), zap.Error(err))
		t.notifier.Notify(ctx, models.Failure("Failed to update task"))
		return models.StudyTask{}, fmt.Errorf("update task: %w", err)
	}

	if !t.cache.merge(seq, updated) {
		t.log.Debug("task update not merged", zap.String("task_id", id), zap.Uint64("seq", seq))
	}

	return updated, nil
}

func (t *TaskS) DeleteTask(ctx context.Context, id string) error {
	seq := t.cache.beginWrite()
	if err := t.store.RemoveTask(ctx, id); err != nil {
		t.log.Error("failed to delete study task", zap.String("task_id", id), zap.Error(err))
		t.notifier.Notify(ctx, models.Failure("Failed to remove task"))
		return fmt.Errorf("delete task: %w", err)
	}

	t.cache.remove(seq, id)
	t.notifier.Notify(ctx, models.Success("Task removed"))

	return nil
}

// Tasks returns a copy of the local task list.
func (t *TaskS) Tasks() []models.StudyTask {
	return t.cache.items()
}

func (t *TaskS) Task(id string) (models.StudyTask, bool) {
	return t.cache.find(id)
}

func (t *TaskS) TasksLoading() bool {
	return t.cache.isLoading()
}

func taskMatcher(filter models.TaskFilter) func(models.StudyTask) bool {
	if filter.DayOfWeek == nil {
		return nil
	}
	day := *filter.DayOfWeek
	return func(task models.StudyTask) bool {
		return task.DayOfWeek == day
	}
}
