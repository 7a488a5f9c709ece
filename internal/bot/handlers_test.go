package bot

import (
	"context"
	"testing"
	"time"

	mock_bot "github.com/LaryssaGabi/StudyFlow/internal/bot/mock"
	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"github.com/LaryssaGabi/StudyFlow/internal/service"
	"github.com/LaryssaGabi/StudyFlow/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTelegramAPI_handleMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		message    *tgbotapi.Message
		f          func(*mock_bot.MockServiceI)
		wantView   models.View
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:     "themes placeholder",
			message:  textMessage(ButtonThemes),
			wantView: models.ViewThemes,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Equal(t, []string{themesText}, mb.Texts())
			},
		},
		{
			name:    "statistics",
			message: textMessage(ButtonStats),
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().RefreshStats(gomock.Any()).Return(models.Stats{FavoriteSubject: models.NoSubject}, nil)
			},
			wantView: models.ViewStats,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				assert.Contains(t, mb.Texts()[0], "Favorite subject: none")
			},
		},
		{
			name:     "main menu",
			message:  textMessage(ButtonMainMenu),
			wantView: models.ViewTasks,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "🏠 Main menu:", msg.Text)
				_, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				assert.True(t, ok)
			},
		},
		{
			name:     "unknown text",
			message:  textMessage("hello"),
			wantView: models.ViewTasks,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Equal(t, []string{"I did not get that. Use the buttons below."}, mb.Texts())
			},
		},
		{
			name: "message without sender",
			message: &tgbotapi.Message{
				Text: ButtonThemes,
				Chat: &tgbotapi.Chat{ID: testChatID},
			},
			wantView: models.ViewTasks,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mb := newTelegramAPIMock(t, ctrl, tt.f)
			api.handleMessage(tt.message)

			tt.assertFunc(t, mb)
			assert.Equal(t, tt.wantView, api.cache.View(chatKey(testChatID)).View)
		})
	}
}

func TestTelegramAPI_handleCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		f          func(*mock_bot.MockServiceI)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "start",
			text: "/start",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "study dashboard")
				keyboard, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				require.True(t, ok)
				assert.Equal(t, ButtonTasks, keyboard.Keyboard[0][0].Text)
			},
		},
		{
			name: "help",
			text: "/help",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Equal(t, []string{helpText}, mb.Texts())
			},
		},
		{
			name: "tasks",
			text: "/tasks",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().FetchTasks(gomock.Any(), models.DayFilter(models.Monday)).Return(nil, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
			},
		},
		{
			name: "unknown",
			text: "/quiz",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Equal(t, []string{"Unknown command. Use /start"}, mb.Texts())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mb := newTelegramAPIMock(t, ctrl, tt.f)
			api.handleCommand(commandMessage(tt.text))

			tt.assertFunc(t, mb)
		})
	}
}

func TestTelegramAPI_handleCallbackQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      *tgbotapi.CallbackQuery
		f          func(*mock_bot.MockServiceI)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:  "main menu",
			query: callbackQuery(callbackMainMenu),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Len(t, mb.Requests, 1)
				assert.Equal(t, []string{"🏠 Main menu:"}, mb.Texts())
			},
		},
		{
			name:  "task callback",
			query: callbackQuery("day:0"),
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().FetchTasks(gomock.Any(), models.DayFilter(models.Sunday)).Return(nil, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				assert.Contains(t, mb.Texts()[0], "Sunday")
			},
		},
		{
			name:  "card callback",
			query: callbackQuery("card_next:c1"),
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Cards().Return(testCards())
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				assert.Contains(t, mb.Texts()[0], "Card 2/2")
			},
		},
		{
			name:  "unknown data",
			query: callbackQuery("new_word"),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Len(t, mb.Requests, 1)
				assert.Empty(t, mb.SentMessages)
			},
		},
		{
			name:  "query without message",
			query: &tgbotapi.CallbackQuery{ID: "q2", Data: callbackMainMenu, From: &tgbotapi.User{ID: 456}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mb := newTelegramAPIMock(t, ctrl, tt.f)
			api.handleCallbackQuery(tt.query)

			tt.assertFunc(t, mb)
		})
	}
}

type staticStore struct {
	service.StoreI
}

func (staticStore) ListTasks(context.Context, models.TaskFilter) ([]models.StudyTask, error) {
	return nil, assert.AnError
}

func TestChatSessions(t *testing.T) {
	t.Parallel()

	mb := &mock_bot.MockBot{}
	c := cache.NewCache()
	log := zap.NewNop()
	newSession := func(n service.Notifier) *service.Session {
		return service.NewSession(staticStore{}, n, service.DefaultReviewPolicy(), log)
	}

	sessions := chatSessions(mb, c, newSession, log)

	first := sessions(testChatID)
	assert.Same(t, first, sessions(testChatID))
	assert.NotSame(t, first, sessions(testChatID+1))
	assert.Equal(t, 2, c.Len())

	// notices of a session go to its own chat
	_, err := first.FetchTasks(context.Background(), models.TaskFilter{})
	require.Error(t, err)
	require.Equal(t, 1, len(mb.SentMessages))
	msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Equal(t, int64(testChatID), msg.ChatID)
	assert.Equal(t, "❌ Failed to load tasks", msg.Text)
}

func TestTelegramAPI_startResetsSession(t *testing.T) {
	t.Parallel()

	mb := &mock_bot.MockBot{}
	c := cache.NewCache()
	log := zap.NewNop()
	newSession := func(n service.Notifier) *service.Session {
		return service.NewSession(staticStore{}, n, service.DefaultReviewPolicy(), log)
	}
	sessions := chatSessions(mb, c, newSession, log)
	api := newTelegramAPI(mb, c, sessions, time.Second, log)

	first := sessions(testChatID)
	other := sessions(testChatID + 1)
	c.SetView(chatKey(testChatID), models.ViewState{View: models.ViewFlashCards})

	api.handleCommand(commandMessage("/start"))

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, models.DefaultViewState(), c.View(chatKey(testChatID)))
	assert.NotSame(t, first, sessions(testChatID))
	assert.Same(t, other, sessions(testChatID+1))
}
