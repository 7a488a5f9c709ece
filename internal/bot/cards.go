package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"github.com/LaryssaGabi/StudyFlow/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type CardSI interface {
	FetchCards(ctx context.Context) ([]models.FlashCard, error)
	CreateCard(ctx context.Context, card models.NewFlashCard) (models.FlashCard, error)
	UpdateCard(ctx context.Context, id string, edit models.CardEdit) (models.FlashCard, error)
	ReviewCard(ctx context.Context, id string, wasCorrect bool) (models.FlashCard, error)
	DeleteCard(ctx context.Context, id string) error
	Cards() []models.FlashCard
	Card(id string) (models.FlashCard, bool)
}

type CardT struct {
	bot     BotSender
	cache   *cache.Cache
	session SessionFunc
	timeout time.Duration
	log     *zap.Logger
}

func NewCardTAPI(bot BotSender, cache *cache.Cache, session SessionFunc, timeout time.Duration, log *zap.Logger) *CardT {
	return &CardT{
		bot:     bot,
		cache:   cache,
		session: session,
		timeout: timeout,
		log:     log,
	}
}

// showCards loads the cards and sends the current one, question side up.
func (t *CardT) showCards(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	cards, err := t.session(chatID).FetchCards(ctx)
	if err != nil {
		t.log.Warn("failed to load cards", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	view := t.cache.View(chatKey(chatID))
	pos := cardIndex(cards, view.CardID)
	if pos < 0 && len(cards) > 0 {
		pos = 0
	}
	t.setCurrent(chatID, cards, pos)

	msg := tgbotapi.NewMessage(chatID, formatNoCards())
	msg.ParseMode = tgbotapi.ModeMarkdown
	if pos >= 0 {
		msg.Text = formatCardFront(cards[pos], pos+1, len(cards))
		msg.ReplyMarkup = cardFrontKeyboard(cards[pos].ID)
	}

	sendMessage(t.bot, msg, t.log)
}

func (t *CardT) setCurrent(chatID int64, cards []models.FlashCard, pos int) {
	key := chatKey(chatID)
	view := t.cache.View(key)
	view.View = models.ViewFlashCards
	view.CardID = ""
	if pos >= 0 && pos < len(cards) {
		view.CardID = cards[pos].ID
	}
	t.cache.SetView(key, view)
}

func (t *CardT) handleCardCallbackQuery(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	action, id, _ := strings.Cut(query.Data, ":")
	session := t.session(chatID)

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	switch action {
	case callbackCardShow:
		cards := session.Cards()
		pos := cardIndex(cards, id)
		if pos < 0 {
			t.cardMissing(chatID)
			return
		}
		t.edit(query.Message, formatCardBack(cards[pos], pos+1, len(cards)), cardBackKeyboard(id))

	case callbackCardRight, callbackCardWrong:
		wasCorrect := action == callbackCardRight
		card, err := session.ReviewCard(ctx, id, wasCorrect)
		if errors.Is(err, models.ErrNotCached) {
			t.cardMissing(chatID)
			return
		}
		if err != nil {
			t.log.Warn("failed to review card", zap.String("card_id", id), zap.Error(err))
			return
		}
		cards := session.Cards()
		pos := cardIndex(cards, id)
		text := fmt.Sprintf("%s\n\n%s", formatCardBack(card, pos+1, len(cards)), formatReview(card, wasCorrect))
		t.edit(query.Message, text, tgbotapi.NewInlineKeyboardMarkup(cardNavRow(id)))

	case callbackCardNext:
		cards := session.Cards()
		if len(cards) == 0 {
			t.edit(query.Message, formatNoCards(), tgbotapi.InlineKeyboardMarkup{})
			return
		}
		pos := (cardIndex(cards, id) + 1) % len(cards)
		t.setCurrent(chatID, cards, pos)
		t.edit(query.Message, formatCardFront(cards[pos], pos+1, len(cards)), cardFrontKeyboard(cards[pos].ID))

	case callbackCardDelete:
		pos := cardIndex(session.Cards(), id)
		if err := session.DeleteCard(ctx, id); err != nil {
			t.log.Warn("failed to delete card", zap.String("card_id", id), zap.Error(err))
			return
		}
		cards := session.Cards()
		if len(cards) == 0 {
			t.setCurrent(chatID, cards, -1)
			t.edit(query.Message, formatNoCards(), tgbotapi.InlineKeyboardMarkup{})
			return
		}
		if pos < 0 || pos >= len(cards) {
			pos = 0
		}
		t.setCurrent(chatID, cards, pos)
		t.edit(query.Message, formatCardFront(cards[pos], pos+1, len(cards)), cardFrontKeyboard(cards[pos].ID))

	default:
		t.log.Warn("unknown card callback", zap.String("data", query.Data))
	}
}

func (t *CardT) cardMissing(chatID int64) {
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Card not found. Open the flash cards again."), t.log)
}

func (t *CardT) edit(message *tgbotapi.Message, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	editMsg := tgbotapi.NewEditMessageText(message.Chat.ID, message.MessageID, text)
	editMsg.ParseMode = tgbotapi.ModeMarkdown
	if len(keyboard.InlineKeyboard) > 0 {
		editMsg.ReplyMarkup = &keyboard
	}

	sendMessage(t.bot, editMsg, t.log)
}

// addCard creates a card from "/addcard Question; Answer; Subject; [difficulty]".
func (t *CardT) addCard(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	card, err := parseNewCard(message.CommandArguments())
	if err != nil {
		replyInvalid(t.bot, t.log, chatID, err, usageAddCard)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	created, err := t.session(chatID).CreateCard(ctx, card)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			replyInvalid(t.bot, t.log, chatID, err, usageAddCard)
			return
		}
		t.log.Warn("failed to add card", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	key := chatKey(chatID)
	view := t.cache.View(key)
	view.CardID = created.ID
	t.cache.SetView(key, view)
}

// editCard changes a card from "/editcard <n> field=value; ...".
func (t *CardT) editCard(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	target, args := parseTarget(message.CommandArguments())
	if target == "" {
		replyInvalid(t.bot, t.log, chatID, models.ErrInvalidInput, usageEditCard)
		return
	}

	edit, err := parseCardEdit(args)
	if err != nil {
		replyInvalid(t.bot, t.log, chatID, err, usageEditCard)
		return
	}

	session := t.session(chatID)
	cards := session.Cards()
	ids := make([]string, 0, len(cards))
	for _, card := range cards {
		ids = append(ids, card.ID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	updated, err := session.UpdateCard(ctx, resolveIndex(target, ids), edit)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			replyInvalid(t.bot, t.log, chatID, err, usageEditCard)
			return
		}
		t.log.Warn("failed to edit card", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	msg := tgbotapi.NewMessage(chatID, "✏️ Card updated: "+updated.Question)
	sendMessage(t.bot, msg, t.log)
}

func cardIndex(cards []models.FlashCard, id string) int {
	for i, card := range cards {
		if card.ID == id {
			return i
		}
	}
	return -1
}
