package service

import (
	"context"
	"testing"
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	mock_service "github.com/LaryssaGabi/StudyFlow/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var reviewedAt = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

func newCardServiceMock(t *testing.T, setupMock func(*mock_service.MockCardStore, *mock_service.MockNotifier)) *CardS {
	ctrl := gomock.NewController(t)
	store := mock_service.NewMockCardStore(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)
	if setupMock != nil {
		setupMock(store, notifier)
	}

	s := NewCardService(store, notifier, DefaultReviewPolicy(), zap.NewNop())
	s.now = func() time.Time { return reviewedAt }

	return s
}

func TestCardS_CreateCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   models.NewFlashCard
		f       func(*mock_service.MockCardStore, *mock_service.MockNotifier)
		wantLen int
		wantErr error
	}{
		{
			name:  "success with defaults",
			input: models.NewFlashCard{Question: "What is H2O? ", Answer: "Water", Subject: "Chem"},
			f: func(ms *mock_service.MockCardStore, mn *mock_service.MockNotifier) {
				ms.EXPECT().InsertCard(gomock.Any(), models.NewFlashCard{
					Question:   "What is H2O?",
					Answer:     "Water",
					Subject:    "Chem",
					Difficulty: models.DifficultyMedium,
				}).Return(models.FlashCard{
					ID:         "c1",
					Question:   "What is H2O?",
					Answer:     "Water",
					Subject:    "Chem",
					Difficulty: models.DifficultyMedium,
				}, nil)
				mn.EXPECT().Notify(gomock.Any(), models.Success("Flash card added"))
			},
			wantLen: 1,
		},
		{
			name:    "missing answer",
			input:   models.NewFlashCard{Question: "Q", Subject: "Chem"},
			wantErr: models.ErrInvalidInput,
		},
		{
			name:    "unknown difficulty",
			input:   models.NewFlashCard{Question: "Q", Answer: "A", Subject: "Chem", Difficulty: "extreme"},
			wantErr: models.ErrInvalidInput,
		},
		{
			name:  "store error",
			input: models.NewFlashCard{Question: "Q", Answer: "A", Subject: "Chem"},
			f: func(ms *mock_service.MockCardStore, mn *mock_service.MockNotifier) {
				ms.EXPECT().InsertCard(gomock.Any(), gomock.Any()).Return(models.FlashCard{}, errStore)
				mn.EXPECT().Notify(gomock.Any(), models.Failure("Failed to add flash card"))
			},
			wantErr: errStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newCardServiceMock(t, tt.f)

			created, err := s.CreateCard(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 0, created.ReviewCount)
				assert.False(t, created.Mastered)
				assert.Equal(t, models.DifficultyMedium, created.Difficulty)
			}
			assert.Len(t, s.Cards(), tt.wantLen)
		})
	}
}

func TestCardS_ThreeCorrectReviews(t *testing.T) {
	t.Parallel()

	card := models.FlashCard{ID: "c1", Question: "Q", Answer: "A", Subject: "Chem", Difficulty: models.DifficultyMedium}

	s := newCardServiceMock(t, func(ms *mock_service.MockCardStore, mn *mock_service.MockNotifier) {
		ms.EXPECT().ListCards(gomock.Any()).Return([]models.FlashCard{card}, nil)
		ms.EXPECT().PatchCard(gomock.Any(), "c1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, patch models.CardPatch) (models.FlashCard, error) {
				review, ok := patch.(models.CardReview)
				require.True(t, ok)
				updated := card
				updated.ReviewCount = review.ReviewCount
				updated.Mastered = review.Mastered
				updated.LastReviewed = &review.LastReviewed
				card = updated
				return updated, nil
			}).Times(3)
	})

	_, err := s.FetchCards(context.Background())
	require.NoError(t, err)

	wantMastered := []bool{false, false, true}
	for i, want := range wantMastered {
		got, err := s.ReviewCard(context.Background(), "c1", true)
		require.NoError(t, err)
		assert.Equal(t, i+1, got.ReviewCount)
		assert.Equal(t, want, got.Mastered)

		cached, ok := s.Card("c1")
		require.True(t, ok)
		assert.Equal(t, got, cached)
	}

	cached, _ := s.Card("c1")
	require.NotNil(t, cached.LastReviewed)
	assert.Equal(t, reviewedAt, *cached.LastReviewed)
}

func TestCardS_ReviewCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		wasCorrect bool
		f          func(*mock_service.MockCardStore, *mock_service.MockNotifier)
		wantErr    error
	}{
		{
			name:       "wrong answer",
			id:         "c1",
			wasCorrect: false,
			f: func(ms *mock_service.MockCardStore, mn *mock_service.MockNotifier) {
				ms.EXPECT().PatchCard(gomock.Any(), "c1", models.CardReview{
					ReviewCount:  5,
					LastReviewed: reviewedAt,
					Mastered:     false,
				}).Return(models.FlashCard{ID: "c1", ReviewCount: 5}, nil)
			},
		},
		{
			name:    "not cached",
			id:      "missing",
			wantErr: models.ErrNotCached,
		},
		{
			name:       "store error",
			id:         "c1",
			wasCorrect: true,
			f: func(ms *mock_service.MockCardStore, mn *mock_service.MockNotifier) {
				ms.EXPECT().PatchCard(gomock.Any(), "c1", gomock.Any()).Return(models.FlashCard{}, errStore)
				mn.EXPECT().Notify(gomock.Any(), models.Failure("Failed to update flash card"))
			},
			wantErr: errStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newCardServiceMock(t, func(ms *mock_service.MockCardStore, mn *mock_service.MockNotifier) {
				ms.EXPECT().ListCards(gomock.Any()).Return([]models.FlashCard{{ID: "c1", ReviewCount: 4, Mastered: true}}, nil)
				if tt.f != nil {
					tt.f(ms, mn)
				}
			})
			_, err := s.FetchCards(context.Background())
			require.NoError(t, err)

			_, err = s.ReviewCard(context.Background(), tt.id, tt.wasCorrect)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				cached, _ := s.Card("c1")
				assert.Equal(t, 4, cached.ReviewCount)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCardS_UpdateCard(t *testing.T) {
	t.Parallel()

	answer := "Dihydrogen monoxide"
	s := newCardServiceMock(t, func(ms *mock_service.MockCardStore, mn *mock_service.MockNotifier) {
		ms.EXPECT().ListCards(gomock.Any()).Return([]models.FlashCard{{ID: "c1", Answer: "Water", ReviewCount: 2}}, nil)
		ms.EXPECT().PatchCard(gomock.Any(), "c1", models.CardEdit{Answer: &answer}).
			Return(models.FlashCard{ID: "c1", Answer: answer, ReviewCount: 2}, nil)
	})

	_, err := s.FetchCards(context.Background())
	require.NoError(t, err)

	_, err = s.UpdateCard(context.Background(), "c1", models.CardEdit{})
	require.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = s.UpdateCard(context.Background(), "c1", models.CardEdit{Answer: &answer})
	require.NoError(t, err)

	cached, _ := s.Card("c1")
	assert.Equal(t, answer, cached.Answer)
	assert.Equal(t, 2, cached.ReviewCount)
}

func TestCardS_DeleteCard(t *testing.T) {
	t.Parallel()

	s := newCardServiceMock(t, func(ms *mock_service.MockCardStore, mn *mock_service.MockNotifier) {
		ms.EXPECT().ListCards(gomock.Any()).Return([]models.FlashCard{{ID: "c1"}, {ID: "c2"}}, nil)
		gomock.InOrder(
			ms.EXPECT().RemoveCard(gomock.Any(), "c1").Return(errStore),
			ms.EXPECT().RemoveCard(gomock.Any(), "c1").Return(nil),
		)
		mn.EXPECT().Notify(gomock.Any(), models.Failure("Failed to remove flash card"))
		mn.EXPECT().Notify(gomock.Any(), models.Success("Flash card removed"))
	})

	_, err := s.FetchCards(context.Background())
	require.NoError(t, err)

	require.Error(t, s.DeleteCard(context.Background(), "c1"))
	assert.Len(t, s.Cards(), 2)

	require.NoError(t, s.DeleteCard(context.Background(), "c1"))
	assert.Equal(t, []models.FlashCard{{ID: "c2"}}, s.Cards())
	assert.False(t, s.CardsLoading())
}
