package bot

import (
	"strings"
	"testing"
	"time"

	mock_bot "github.com/LaryssaGabi/StudyFlow/internal/bot/mock"
	"github.com/LaryssaGabi/StudyFlow/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
)

const testChatID = 123

func newTelegramAPIMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI)) (*TelegramAPI, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService)
	}

	sessions := func(int64) SessionI { return mockService }

	return newTelegramAPI(mockBot, cache.NewCache(), sessions, time.Second, zap.NewNop()), mockBot
}

func textMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 100,
		Text:      text,
		Chat:      &tgbotapi.Chat{ID: testChatID},
		From:      &tgbotapi.User{ID: 456},
	}
}

func commandMessage(text string) *tgbotapi.Message {
	msg := textMessage(text)
	length := len(text)
	if i := strings.IndexByte(text, ' '); i >= 0 {
		length = i
	}
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}}
	return msg
}

func callbackQuery(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:      "q1",
		Data:    data,
		From:    &tgbotapi.User{ID: 456},
		Message: textMessage("previous"),
	}
}
