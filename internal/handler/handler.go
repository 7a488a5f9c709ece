package handler

//go:generate mockgen -source=handler.go -destination=mock/handler_mock.go

import (
	"context"
	"net/http"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"github.com/LaryssaGabi/StudyFlow/internal/service"
	"github.com/LaryssaGabi/StudyFlow/internal/storage/cache"
	"go.uber.org/zap"
)

// ServiceI is the dashboard of one API subject.
type ServiceI interface {
	FetchTasks(ctx context.Context, filter models.TaskFilter) ([]models.StudyTask, error)
	CreateTask(ctx context.Context, task models.NewStudyTask) (models.StudyTask, error)
	UpdateTask(ctx context.Context, id string, edit models.TaskEdit) (models.StudyTask, error)
	ToggleTask(ctx context.Context, id string, completed bool) (models.StudyTask, error)
	DeleteTask(ctx context.Context, id string) error

	FetchCards(ctx context.Context) ([]models.FlashCard, error)
	CreateCard(ctx context.Context, card models.NewFlashCard) (models.FlashCard, error)
	UpdateCard(ctx context.Context, id string, edit models.CardEdit) (models.FlashCard, error)
	ReviewCard(ctx context.Context, id string, wasCorrect bool) (models.FlashCard, error)
	DeleteCard(ctx context.Context, id string) error

	RefreshStats(ctx context.Context) (models.Stats, error)
}

// SessionFunc resolves the session of an authenticated subject.
type SessionFunc func(subject string) ServiceI

type Handler struct {
	sessions SessionFunc
	log      *zap.Logger
}

func NewHandler(sessions SessionFunc, log *zap.Logger) *Handler {
	return &Handler{sessions: sessions, log: log}
}

// SubjectSessions keeps one session per token subject in the cache.
func SubjectSessions(c *cache.Cache, newSession func(notifier service.Notifier) *service.Session, log *zap.Logger) SessionFunc {
	return func(subject string) ServiceI {
		s, created := c.Session("api:"+subject, func() *service.Session {
			return newSession(service.NewLogNotifier(log.With(zap.String("subject", subject))))
		})
		if created {
			log.Info("api session started", zap.String("subject", subject))
		}
		return s
	}
}

// Routes registers the API on a mux. Every route requires an authenticated subject.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Tasks
	mux.HandleFunc("GET /api/tasks", h.withSession(h.ListTasks))
	mux.HandleFunc("POST /api/tasks", h.withSession(h.CreateTask))
	mux.HandleFunc("PATCH /api/tasks/{id}", h.withSession(h.UpdateTask))
	mux.HandleFunc("PUT /api/tasks/{id}/completed", h.withSession(h.ToggleTask))
	mux.HandleFunc("DELETE /api/tasks/{id}", h.withSession(h.DeleteTask))

	// Flash cards
	mux.HandleFunc("GET /api/cards", h.withSession(h.ListCards))
	mux.HandleFunc("POST /api/cards", h.withSession(h.CreateCard))
	mux.HandleFunc("PATCH /api/cards/{id}", h.withSession(h.UpdateCard))
	mux.HandleFunc("POST /api/cards/{id}/review", h.withSession(h.ReviewCard))
	mux.HandleFunc("DELETE /api/cards/{id}", h.withSession(h.DeleteCard))

	// Statistics
	mux.HandleFunc("GET /api/stats", h.withSession(h.Stats))

	return mux
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, s ServiceI)

func (h *Handler) withSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := Subject(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r, h.sessions(subject))
	}
}
