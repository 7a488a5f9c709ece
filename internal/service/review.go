package service

import (
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
)

const DefaultMasteryThreshold = 3

// ReviewPolicy decides the mastery of a card after a review.
type ReviewPolicy struct {
	// MasteryThreshold is the review count from which a correct answer masters the card.
	MasteryThreshold int
	// KeepMasteryOnMiss leaves a mastered card mastered after a wrong answer.
	KeepMasteryOnMiss bool
}

func DefaultReviewPolicy() ReviewPolicy {
	return ReviewPolicy{MasteryThreshold: DefaultMasteryThreshold}
}

// Review computes the update produced by one review of card. The review count always
// grows by one; the card is mastered when the answer was correct and the new count
// reached the threshold.
func (p ReviewPolicy) Review(card models.FlashCard, wasCorrect bool, now time.Time) models.CardReview {
	count := card.ReviewCount + 1

	mastered := wasCorrect && count >= p.threshold()
	if !wasCorrect && p.KeepMasteryOnMiss {
		mastered = card.Mastered
	}

	return models.CardReview{
		ReviewCount:  count,
		LastReviewed: now,
		Mastered:     mastered,
	}
}

func (p ReviewPolicy) threshold() int {
	if p.MasteryThreshold < 1 {
		return DefaultMasteryThreshold
	}
	return p.MasteryThreshold
}
