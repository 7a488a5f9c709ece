package gormrepo

import (
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

type taskRecord struct {
	ID              string `gorm:"primaryKey;size:21"`
	Title           string `gorm:"not null;check:chk_study_tasks_title,title <> ''"`
	Description     *string
	DayOfWeek       int       `gorm:"not null;index;check:chk_study_tasks_day,day_of_week BETWEEN 0 AND 6"`
	Priority        string    `gorm:"not null;size:10;default:medium"`
	Completed       bool      `gorm:"not null;default:false"`
	DurationMinutes *int      `gorm:"check:chk_study_tasks_duration,duration_minutes > 0"`
	Subject         string    `gorm:"not null;check:chk_study_tasks_subject,subject <> ''"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

func (taskRecord) TableName() string {
	return "study_tasks"
}

func (r *taskRecord) BeforeCreate(tx *gorm.DB) error {
	return assignID(&r.ID)
}

func (r taskRecord) toModel() models.StudyTask {
	return models.StudyTask{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		DayOfWeek:       r.DayOfWeek,
		Priority:        models.Priority(r.Priority),
		Completed:       r.Completed,
		DurationMinutes: r.DurationMinutes,
		Subject:         r.Subject,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type cardRecord struct {
	ID           string `gorm:"primaryKey;size:21"`
	Question     string `gorm:"not null;check:chk_flash_cards_question,question <> ''"`
	Answer       string `gorm:"not null;check:chk_flash_cards_answer,answer <> ''"`
	Subject      string `gorm:"not null;check:chk_flash_cards_subject,subject <> ''"`
	Difficulty   string `gorm:"not null;size:10;default:medium"`
	ReviewCount  int    `gorm:"not null;default:0;check:chk_flash_cards_reviews,review_count >= 0"`
	Mastered     bool   `gorm:"not null;default:false"`
	LastReviewed *time.Time
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

func (cardRecord) TableName() string {
	return "flash_cards"
}

func (r *cardRecord) BeforeCreate(tx *gorm.DB) error {
	return assignID(&r.ID)
}

func (r cardRecord) toModel() models.FlashCard {
	return models.FlashCard{
		ID:           r.ID,
		Question:     r.Question,
		Answer:       r.Answer,
		Subject:      r.Subject,
		Difficulty:   models.Difficulty(r.Difficulty),
		ReviewCount:  r.ReviewCount,
		Mastered:     r.Mastered,
		LastReviewed: r.LastReviewed,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func assignID(id *string) error {
	if *id != "" {
		return nil
	}
	v, err := gonanoid.New()
	if err != nil {
		return err
	}
	*id = v
	return nil
}
