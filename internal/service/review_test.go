package service

import (
	"testing"
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestReviewPolicy_Review(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		policy     ReviewPolicy
		card       models.FlashCard
		wasCorrect bool
		want       models.CardReview
	}{
		{
			name:       "first correct review",
			policy:     DefaultReviewPolicy(),
			card:       models.FlashCard{ReviewCount: 0},
			wasCorrect: true,
			want:       models.CardReview{ReviewCount: 1, LastReviewed: now},
		},
		{
			name:       "second correct review",
			policy:     DefaultReviewPolicy(),
			card:       models.FlashCard{ReviewCount: 1},
			wasCorrect: true,
			want:       models.CardReview{ReviewCount: 2, LastReviewed: now},
		},
		{
			name:       "third correct review masters",
			policy:     DefaultReviewPolicy(),
			card:       models.FlashCard{ReviewCount: 2},
			wasCorrect: true,
			want:       models.CardReview{ReviewCount: 3, LastReviewed: now, Mastered: true},
		},
		{
			name:       "wrong answer at threshold",
			policy:     DefaultReviewPolicy(),
			card:       models.FlashCard{ReviewCount: 2},
			wasCorrect: false,
			want:       models.CardReview{ReviewCount: 3, LastReviewed: now},
		},
		{
			name:       "wrong answer unmasters",
			policy:     DefaultReviewPolicy(),
			card:       models.FlashCard{ReviewCount: 5, Mastered: true},
			wasCorrect: false,
			want:       models.CardReview{ReviewCount: 6, LastReviewed: now},
		},
		{
			name:       "wrong answer keeps mastery",
			policy:     ReviewPolicy{MasteryThreshold: 3, KeepMasteryOnMiss: true},
			card:       models.FlashCard{ReviewCount: 5, Mastered: true},
			wasCorrect: false,
			want:       models.CardReview{ReviewCount: 6, LastReviewed: now, Mastered: true},
		},
		{
			name:       "keep mastery does not master",
			policy:     ReviewPolicy{MasteryThreshold: 3, KeepMasteryOnMiss: true},
			card:       models.FlashCard{ReviewCount: 5},
			wasCorrect: false,
			want:       models.CardReview{ReviewCount: 6, LastReviewed: now},
		},
		{
			name:       "custom threshold",
			policy:     ReviewPolicy{MasteryThreshold: 1},
			card:       models.FlashCard{},
			wasCorrect: true,
			want:       models.CardReview{ReviewCount: 1, LastReviewed: now, Mastered: true},
		},
		{
			name:       "zero threshold falls back to default",
			policy:     ReviewPolicy{},
			card:       models.FlashCard{ReviewCount: 1},
			wasCorrect: true,
			want:       models.CardReview{ReviewCount: 2, LastReviewed: now},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.policy.Review(tt.card, tt.wasCorrect, now))
		})
	}
}

func TestReviewPolicy_ReviewCountGrows(t *testing.T) {
	t.Parallel()

	policy := DefaultReviewPolicy()
	for n := 0; n < 10; n++ {
		for _, correct := range []bool{true, false} {
			got := policy.Review(models.FlashCard{ReviewCount: n}, correct, time.Now())
			assert.Equal(t, n+1, got.ReviewCount)
			assert.Equal(t, correct && n+1 >= DefaultMasteryThreshold, got.Mastered)
		}
	}
}
