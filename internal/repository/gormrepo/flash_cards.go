package gormrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"gorm.io/gorm"
)

type CardsG struct {
	db *gorm.DB
}

func NewCardsRepository(db *gorm.DB) *CardsG {
	return &CardsG{db: db}
}

func (c *CardsG) ListCards(ctx context.Context) ([]models.FlashCard, error) {
	var recs []cardRecord
	if err := c.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list flash cards: %w", mapErr(err))
	}

	cards := make([]models.FlashCard, 0, len(recs))
	for _, r := range recs {
		cards = append(cards, r.toModel())
	}
	return cards, nil
}

func (c *CardsG) InsertCard(ctx context.Context, card models.NewFlashCard) (models.FlashCard, error) {
	rec := cardRecord{
		Question:   card.Question,
		Answer:     card.Answer,
		Subject:    card.Subject,
		Difficulty: string(card.Difficulty),
	}
	if err := c.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return models.FlashCard{}, fmt.Errorf("failed to insert flash card: %w", mapErr(err))
	}

	return rec.toModel(), nil
}

func (c *CardsG) PatchCard(ctx context.Context, id string, patch models.CardPatch) (models.FlashCard, error) {
	cols := patch.Columns()
	cols["updated_at"] = time.Now()

	var rec cardRecord
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&cardRecord{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&rec, "id = ?", id).Error
	})
	if err != nil {
		return models.FlashCard{}, fmt.Errorf("failed to patch flash card %s: %w", id, mapErr(err))
	}

	return rec.toModel(), nil
}

func (c *CardsG) RemoveCard(ctx context.Context, id string) error {
	if err := c.db.WithContext(ctx).Delete(&cardRecord{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to remove flash card %s: %w", id, mapErr(err))
	}
	return nil
}
