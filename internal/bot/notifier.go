package bot

import (
	"context"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// ChatNotifier delivers session notices as chat messages.
type ChatNotifier struct {
	bot    BotSender
	chatID int64
	log    *zap.Logger
}

func NewChatNotifier(bot BotSender, chatID int64, log *zap.Logger) *ChatNotifier {
	return &ChatNotifier{bot: bot, chatID: chatID, log: log}
}

func (n *ChatNotifier) Notify(_ context.Context, notice models.Notice) {
	icon := "✅ "
	if notice.Kind == models.NoticeError {
		icon = "❌ "
	}

	sendMessage(n.bot, tgbotapi.NewMessage(n.chatID, icon+notice.Text), n.log)
}
