package bot

import (
	"context"
	"strconv"
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/service"
	"github.com/LaryssaGabi/StudyFlow/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/service_mock.go -package=mock_bot -mock_names=SessionI=MockServiceI github.com/LaryssaGabi/StudyFlow/internal/bot SessionI

// SessionI is the dashboard of one chat.
type SessionI interface {
	TaskSI
	CardSI
	StatsSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// SessionFunc resolves the dashboard session of a chat.
type SessionFunc func(chatID int64) SessionI

// NewSessionFunc builds a session that reports its notices through notifier.
type NewSessionFunc func(notifier service.Notifier) *service.Session

type TelegramAPI struct {
	api   *tgbotapi.BotAPI
	bot   BotSender
	cache *cache.Cache
	log   *zap.Logger
	tasks *TaskT
	cards *CardT
	stats *StatsT
}

func NewTelegramAPI(botToken, env string, timeout time.Duration, newSession NewSessionFunc, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	api.Debug = env == "development"

	t := newTelegramAPI(api, cache, chatSessions(api, cache, newSession, log), timeout, log)
	t.api = api

	return t, nil
}

func newTelegramAPI(bot BotSender, cache *cache.Cache, sessions SessionFunc, timeout time.Duration, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:   bot,
		cache: cache,
		log:   log,
		tasks: NewTaskTAPI(bot, cache, sessions, timeout, log),
		cards: NewCardTAPI(bot, cache, sessions, timeout, log),
		stats: NewStatsTAPI(bot, sessions, timeout, log),
	}
}

// Start polls updates until ctx is done.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)
	t.log.Info("telegram bot started", zap.String("username", t.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			t.log.Info("telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

// chatSessions keeps one session per chat in the cache. Notices of a session are sent to its chat.
func chatSessions(bot BotSender, c *cache.Cache, newSession NewSessionFunc, log *zap.Logger) SessionFunc {
	return func(chatID int64) SessionI {
		s, created := c.Session(chatKey(chatID), func() *service.Session {
			return newSession(NewChatNotifier(bot, chatID, log))
		})
		if created {
			log.Info("chat session started", zap.Int64("chat_id", chatID))
		}
		return s
	}
}

func chatKey(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable, log *zap.Logger) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Error("failed to send message", zap.Error(err))
		return
	}
	log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
}
