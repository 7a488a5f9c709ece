package service

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

import (
	"context"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"go.uber.org/zap"
)

// TaskStore is the persistence contract of the study_tasks collection.
type TaskStore interface {
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.StudyTask, error)
	InsertTask(ctx context.Context, task models.NewStudyTask) (models.StudyTask, error)
	PatchTask(ctx context.Context, id string, patch models.TaskPatch) (models.StudyTask, error)
	RemoveTask(ctx context.Context, id string) error
}

// CardStore is the persistence contract of the flash_cards collection.
type CardStore interface {
	ListCards(ctx context.Context) ([]models.FlashCard, error)
	InsertCard(ctx context.Context, card models.NewFlashCard) (models.FlashCard, error)
	PatchCard(ctx context.Context, id string, patch models.CardPatch) (models.FlashCard, error)
	RemoveCard(ctx context.Context, id string) error
}

type StoreI interface {
	TaskStore
	CardStore
}

// Notifier shows transient notices to the user of a session.
type Notifier interface {
	Notify(ctx context.Context, notice models.Notice)
}

// Session owns the repositories of one dashboard user. TaskS is the day view,
// StatsS keeps its own unfiltered task list.
type Session struct {
	*TaskS
	*CardS
	*StatsS
}

func NewSession(store StoreI, notifier Notifier, policy ReviewPolicy, log *zap.Logger) *Session {
	cards := NewCardService(store, notifier, policy, log)
	return &Session{
		TaskS:  NewTaskService(store, notifier, log),
		CardS:  cards,
		StatsS: NewStatsService(NewTaskService(store, notifier, log), cards, log),
	}
}
