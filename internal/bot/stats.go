package bot

import (
	"context"
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type StatsSI interface {
	RefreshStats(ctx context.Context) (models.Stats, error)
}

type StatsT struct {
	bot     BotSender
	session SessionFunc
	timeout time.Duration
	log     *zap.Logger
}

func NewStatsTAPI(bot BotSender, session SessionFunc, timeout time.Duration, log *zap.Logger) *StatsT {
	return &StatsT{
		bot:     bot,
		session: session,
		timeout: timeout,
		log:     log,
	}
}

func (t *StatsT) sendStats(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	stats, err := t.session(chatID).RefreshStats(ctx)
	if err != nil {
		t.log.Warn("failed to refresh stats", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatStats(stats))
	msg.ParseMode = tgbotapi.ModeMarkdown

	sendMessage(t.bot, msg, t.log)
}
