package bot

import (
	"strings"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonTasks      = "📅 Tasks"
	ButtonFlashCards = "🧠 Flash cards"
	ButtonStats      = "📊 Statistics"
	ButtonThemes     = "🎨 Themes"
	ButtonMainMenu   = "🏠 Main menu"
	ButtonHelp       = "ℹ️ Help"
)

const (
	callbackDay        = "day"
	callbackTaskToggle = "task_toggle"
	callbackTaskDelete = "task_del"
	callbackCardShow   = "card_show"
	callbackCardRight  = "card_right"
	callbackCardWrong  = "card_wrong"
	callbackCardNext   = "card_next"
	callbackCardDelete = "card_del"
	callbackMainMenu   = "main_menu"
)

const themesText = "🎨 Themes are coming soon."

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "tasks":
		t.tasks.showTasks(message)
	case "cards":
		t.cards.showCards(message)
	case "stats":
		t.setView(message.Chat.ID, models.ViewStats)
		t.stats.sendStats(message)
	case "addtask":
		t.tasks.addTask(message)
	case "edittask":
		t.tasks.editTask(message)
	case "addcard":
		t.cards.addCard(message)
	case "editcard":
		t.cards.editCard(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "👋 Hi! I am your study dashboard.\n\n" +
		"✨ What I can do:\n" +
		"• 📅 Plan study tasks for every day of the week\n" +
		"• 🧠 Drill flash cards until you master them\n" +
		"• 📊 Show how your studies are going\n\n" +
		"Pick a section below to start!"

	// /start opens a fresh dashboard, lists are reloaded on the next view
	key := chatKey(message.Chat.ID)
	t.cache.DeleteSession(key)
	t.cache.SetView(key, models.DefaultViewState())

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Main menu:")
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonTasks),
			tgbotapi.NewKeyboardButton(ButtonFlashCards),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonStats),
			tgbotapi.NewKeyboardButton(ButtonThemes),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg, t.log)
}

const helpText = `
📚 Commands:
/start - open the dashboard
/tasks - tasks of the selected day
/cards - review flash cards
/stats - your statistics
/addtask Title; Subject; [minutes]; [priority]; [description]
/edittask <n> title=...; subject=...; day=monday; priority=high; minutes=30; description=...
/addcard Question; Answer; Subject; [difficulty]
/editcard <n> question=...; answer=...; subject=...; difficulty=hard

<n> is the position shown in the list.
Tasks are added to the selected day. A card is mastered after three reviews when the last answer was right.
`

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	switch message.Text {
	case ButtonTasks:
		t.tasks.showTasks(message)
	case ButtonFlashCards:
		t.cards.showCards(message)
	case ButtonStats:
		t.setView(message.Chat.ID, models.ViewStats)
		t.stats.sendStats(message)
	case ButtonThemes:
		t.showThemes(message)
	case ButtonMainMenu:
		t.showMainMenu(message)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I did not get that. Use the buttons below.")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) setView(chatID int64, v models.View) {
	key := chatKey(chatID)
	view := t.cache.View(key)
	view.View = v
	t.cache.SetView(key, view)
}

func (t *TelegramAPI) showThemes(message *tgbotapi.Message) {
	t.setView(message.Chat.ID, models.ViewThemes)

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, themesText), t.log)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil {
		t.log.Warn("callback query without message", zap.String("query_id", query.ID))
		return
	}

	action, _, _ := strings.Cut(query.Data, ":")

	switch action {
	case callbackDay, callbackTaskToggle, callbackTaskDelete:
		t.tasks.handleTaskCallbackQuery(query)
	case callbackCardShow, callbackCardRight, callbackCardWrong, callbackCardNext, callbackCardDelete:
		t.cards.handleCardCallbackQuery(query)
	case callbackMainMenu:
		t.showMainMenu(query.Message)
	default:
		t.log.Warn("unknown callback data", zap.String("data", query.Data), zap.Int64("chat_id", query.Message.Chat.ID))
	}
}
