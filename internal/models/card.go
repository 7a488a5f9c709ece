package models

import (
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

const (
	CardColumnQuestion     = "question"
	CardColumnAnswer       = "answer"
	CardColumnSubject      = "subject"
	CardColumnDifficulty   = "difficulty"
	CardColumnReviewCount  = "review_count"
	CardColumnMastered     = "mastered"
	CardColumnLastReviewed = "last_reviewed"
)

type FlashCard struct {
	ID           string     `db:"id" json:"id"`
	Question     string     `db:"question" json:"question"`
	Answer       string     `db:"answer" json:"answer"`
	Subject      string     `db:"subject" json:"subject"`
	Difficulty   Difficulty `db:"difficulty" json:"difficulty"`
	ReviewCount  int        `db:"review_count" json:"review_count"`
	Mastered     bool       `db:"mastered" json:"mastered"`
	LastReviewed *time.Time `db:"last_reviewed" json:"last_reviewed,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// NewFlashCard holds the user supplied fields of a card. Review state always starts
// at zero reviews and not mastered.
type NewFlashCard struct {
	Question   string     `json:"question" validate:"required"`
	Answer     string     `json:"answer" validate:"required"`
	Subject    string     `json:"subject" validate:"required"`
	Difficulty Difficulty `json:"difficulty" validate:"oneof=easy medium hard"`
}

func (c *NewFlashCard) Normalize() {
	c.Question = strings.TrimSpace(c.Question)
	c.Answer = strings.TrimSpace(c.Answer)
	c.Subject = strings.TrimSpace(c.Subject)
	if c.Difficulty == "" {
		c.Difficulty = DifficultyMedium
	}
}

// CardPatch is one of CardEdit or CardReview.
type CardPatch interface {
	Columns() map[string]any
	cardPatch()
}

// CardEdit changes the content of a card. Mastery is not editable.
type CardEdit struct {
	Question   *string     `json:"question,omitempty" validate:"omitempty,min=1"`
	Answer     *string     `json:"answer,omitempty" validate:"omitempty,min=1"`
	Subject    *string     `json:"subject,omitempty" validate:"omitempty,min=1"`
	Difficulty *Difficulty `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

func (e *CardEdit) Normalize() {
	e.Question = trimPtr(e.Question)
	e.Answer = trimPtr(e.Answer)
	e.Subject = trimPtr(e.Subject)
}

func (e CardEdit) Empty() bool {
	return len(e.Columns()) == 0
}

func (e CardEdit) Columns() map[string]any {
	cols := make(map[string]any)
	if e.Question != nil {
		cols[CardColumnQuestion] = *e.Question
	}
	if e.Answer != nil {
		cols[CardColumnAnswer] = *e.Answer
	}
	if e.Subject != nil {
		cols[CardColumnSubject] = *e.Subject
	}
	if e.Difficulty != nil {
		cols[CardColumnDifficulty] = string(*e.Difficulty)
	}
	return cols
}

func (CardEdit) cardPatch() {}

// CardReview is the outcome of one review.
type CardReview struct {
	ReviewCount  int       `json:"review_count"`
	LastReviewed time.Time `json:"last_reviewed"`
	Mastered     bool      `json:"mastered"`
}

func (r CardReview) Columns() map[string]any {
	return map[string]any{
		CardColumnReviewCount:  r.ReviewCount,
		CardColumnLastReviewed: r.LastReviewed,
		CardColumnMastered:     r.Mastered,
	}
}

func (CardReview) cardPatch() {}
