package service

import (
	"context"
	"fmt"
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"github.com/LaryssaGabi/StudyFlow/pkg/validator"
	"go.uber.org/zap"
)

type CardS struct {
	store    CardStore
	notifier Notifier
	policy   ReviewPolicy
	log      *zap.Logger
	cache    *listCache[models.FlashCard]
	now      func() time.Time
}

func NewCardService(store CardStore, notifier Notifier, policy ReviewPolicy, log *zap.Logger) *CardS {
	return &CardS{
		store:    store,
		notifier: notifier,
		policy:   policy,
		log:      log,
		cache:    newListCache(func(c models.FlashCard) string { return c.ID }),
		now:      time.Now,
	}
}

func (c *CardS) FetchCards(ctx context.Context) ([]models.FlashCard, error) {
	seq := c.cache.beginFetch()
	defer c.cache.endFetch()

	cards, err := c.store.ListCards(ctx)
	if err != nil {
		c.log.Error("failed to fetch flash cards", zap.Error(err))
		c.notifier.Notify(ctx, models.Failure("Failed to load flash cards"))
		return nil, fmt.Errorf("fetch cards: %w", err)
	}

	if !c.cache.commitFetch(seq, cards, nil) {
		c.log.Debug("superseded card fetch discarded", zap.Uint64("seq", seq))
	}

	return cards, nil
}

func (c *CardS) CreateCard(ctx context.Context, card models.NewFlashCard) (models.FlashCard, error) {
	card.Normalize()
	if err := validator.ValidateStruct(card); err != nil {
		return models.FlashCard{}, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	seq := c.cache.beginWrite()
	created, err := c.store.InsertCard(ctx, card)
	if err != nil {
		c.log.Error("failed to create flash card", zap.String("subject", card.Subject), zap.Error(err))
		c.notifier.Notify(ctx, models.Failure("Failed to add flash card"))
		return models.FlashCard{}, fmt.Errorf("create card: %w", err)
	}

	c.cache.prepend(seq, created)
	c.notifier.Notify(ctx, models.Success("Flash card added"))

	return created, nil
}

func (c *CardS) UpdateCard(ctx context.Context, id string, edit models.CardEdit) (models.FlashCard, error) {
	edit.Normalize()
	if edit.Empty() {
		return models.FlashCard{}, fmt.Errorf("%w: nothing to update", models.ErrInvalidInput)
	}
	if err := validator.ValidateStruct(edit); err != nil {
		return models.FlashCard{}, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	return c.update(ctx, id, edit)
}

// ReviewCard records one review of a cached card and stores the resulting
// review count and mastery in a single update.
func (c *CardS) ReviewCard(ctx context.Context, id string, wasCorrect bool) (models.FlashCard, error) {
	card, ok := c.cache.find(id)
	if !ok {
		return models.FlashCard{}, fmt.Errorf("flash card %s: %w", id, models.ErrNotCached)
	}

	review := c.policy.Review(card, wasCorrect, c.now())

	return c.update(ctx, id, review)
}

func (c *CardS) update(ctx context.Context, id string, patch models.CardPatch) (models.FlashCard, error) {
	seq := c.cache.beginWrite()
	updated, err := c.store.PatchCard(ctx, id, patch)
	if err != nil {
		c.log.Error("failed to update flash card", zap.String("card_id", id), zap.Error(err))
		c.notifier.Notify(ctx, models.Failure("Failed to update flash card"))
		return models.FlashCard{}, fmt.Errorf("update card: %w", err)
	}

	if !c.cache.merge(seq, updated) {
		c.log.Debug("card update not merged", zap.String("card_id", id), zap.Uint64("seq", seq))
	}

	return updated, nil
}

func (c *CardS) DeleteCard(ctx context.Context, id string) error {
	seq := c.cache.beginWrite()
	if err := c.store.RemoveCard(ctx, id); err != nil {
		c.log.Error("failed to delete flash card", zap.String("card_id", id), zap.Error(err))
		c.notifier.Notify(ctx, models.Failure("Failed to remove flash card"))
		return fmt.Errorf("delete card: %w", err)
	}

	c.cache.remove(seq, id)
	c.notifier.Notify(ctx, models.Success("Flash card removed"))

	return nil
}

func (c *CardS) Cards() []models.FlashCard {
	return c.cache.items()
}

func (c *CardS) Card(id string) (models.FlashCard, bool) {
	return c.cache.find(id)
}

func (c *CardS) CardsLoading() bool {
	return c.cache.isLoading()
}
