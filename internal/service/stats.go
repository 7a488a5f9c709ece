package service

import (
	"context"
	"sync"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"go.uber.org/zap"
)

// ComputeStats aggregates the task and card lists.
func ComputeStats(tasks []models.StudyTask, cards []models.FlashCard) models.Stats {
	stats := models.Stats{
		TotalTasks:      len(tasks),
		TotalCards:      len(cards),
		FavoriteSubject: models.NoSubject,
	}

	counts := make(map[string]int)
	var subjects []string
	for _, task := range tasks {
		if counts[task.Subject] == 0 {
			subjects = append(subjects, task.Subject)
		}
		counts[task.Subject]++

		if !task.Completed {
			continue
		}
		stats.CompletedTasks++
		if task.DurationMinutes != nil {
			stats.TotalStudyTime += *task.DurationMinutes
		}
		if models.ValidDay(task.DayOfWeek) {
			stats.WeeklyDistribution[task.DayOfWeek]++
		}
	}

	// ties go to the subject seen first
	best := 0
	for _, subject := range subjects {
		if counts[subject] > best {
			best = counts[subject]
			stats.FavoriteSubject = subject
		}
	}

	for _, card := range cards {
		if card.Mastered {
			stats.MasteredCards++
		}
	}

	stats.CompletionRate = percent(stats.CompletedTasks, stats.TotalTasks)
	stats.CardMasteryRate = percent(stats.MasteredCards, stats.TotalCards)

	return stats
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// StatsS serves the statistics view. The result is memoized on the versions of
// the two lists it is computed from.
type StatsS struct {
	tasks *TaskS
	cards *CardS
	log   *zap.Logger

	mu    sync.Mutex
	key   [2]uint64
	valid bool
	memo  models.Stats
}

func NewStatsService(tasks *TaskS, cards *CardS, log *zap.Logger) *StatsS {
	return &StatsS{tasks: tasks, cards: cards, log: log}
}

// Stats computes the statistics of the current local lists.
func (s *StatsS) Stats() models.Stats {
	key := [2]uint64{s.tasks.cache.currentVersion(), s.cards.cache.currentVersion()}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.valid && s.key == key {
		return s.memo
	}

	s.memo = ComputeStats(s.tasks.Tasks(), s.cards.Cards())
	s.key = key
	s.valid = true

	return s.memo
}

// RefreshStats fetches every task and card and returns the fresh statistics.
func (s *StatsS) RefreshStats(ctx context.Context) (models.Stats, error) {
	if _, err := s.tasks.FetchTasks(ctx, models.TaskFilter{}); err != nil {
		return models.Stats{}, err
	}
	if _, err := s.cards.FetchCards(ctx); err != nil {
		return models.Stats{}, err
	}

	stats := s.Stats()
	s.log.Debug("statistics refreshed",
		zap.Int("tasks", stats.TotalTasks),
		zap.Int("cards", stats.TotalCards),
	)

	return stats, nil
}

// StatsTasks returns the unfiltered task list the statistics are computed from.
func (s *StatsS) StatsTasks() []models.StudyTask {
	return s.tasks.Tasks()
}
