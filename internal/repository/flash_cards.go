package repository

import (
	"context"
	"fmt"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
)

const cardColumns = `id, question, answer, subject, difficulty, review_count, mastered, last_reviewed, created_at, updated_at`

type CardsR struct {
	db    QueryI
	newID func() string
}

func NewCardsRepository(db QueryI) *CardsR {
	return &CardsR{db: db, newID: newID}
}

func (c *CardsR) ListCards(ctx context.Context) ([]models.FlashCard, error) {
	query := `SELECT ` + cardColumns + ` FROM flash_cards ORDER BY created_at DESC, id DESC`

	cards := make([]models.FlashCard, 0)
	if err := c.db.SelectContext(ctx, &cards, query); err != nil {
		return nil, fmt.Errorf("failed to list flash cards: %w", mapErr(err))
	}

	return cards, nil
}

func (c *CardsR) InsertCard(ctx context.Context, card models.NewFlashCard) (models.FlashCard, error) {
	query := `
		INSERT INTO flash_cards (id, question, answer, subject, difficulty, review_count, mastered, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, false, NOW(), NOW())
		RETURNING ` + cardColumns

	var created models.FlashCard
	err := c.db.GetContext(ctx, &created, query, c.newID(), card.Question, card.Answer, card.Subject, card.Difficulty)
	if err != nil {
		return models.FlashCard{}, fmt.Errorf("failed to insert flash card: %w", mapErr(err))
	}

	return created, nil
}

func (c *CardsR) PatchCard(ctx context.Context, id string, patch models.CardPatch) (models.FlashCard, error) {
	set, args := setClause(patch.Columns(), 1)
	query := fmt.Sprintf(`UPDATE flash_cards SET %s WHERE id = $%d RETURNING %s`, set, len(args)+1, cardColumns)
	args = append(args, id)

	var updated models.FlashCard
	if err := c.db.GetContext(ctx, &updated, query, args...); err != nil {
		return models.FlashCard{}, fmt.Errorf("failed to patch flash card %s: %w", id, mapErr(err))
	}

	return updated, nil
}

func (c *CardsR) RemoveCard(ctx context.Context, id string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM flash_cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to remove flash card %s: %w", id, mapErr(err))
	}

	return nil
}
