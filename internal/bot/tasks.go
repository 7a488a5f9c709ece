package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"github.com/LaryssaGabi/StudyFlow/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type TaskSI interface {
	FetchTasks(ctx context.Context, filter models.TaskFilter) ([]models.StudyTask, error)
	CreateTask(ctx context.Context, task models.NewStudyTask) (models.StudyTask, error)
	UpdateTask(ctx context.Context, id string, edit models.TaskEdit) (models.StudyTask, error)
	ToggleTask(ctx context.Context, id string, completed bool) (models.StudyTask, error)
	DeleteTask(ctx context.Context, id string) error
	Tasks() []models.StudyTask
	Task(id string) (models.StudyTask, bool)
}

type TaskT struct {
	bot     BotSender
	cache   *cache.Cache
	session SessionFunc
	timeout time.Duration
	log     *zap.Logger
}

func NewTaskTAPI(bot BotSender, cache *cache.Cache, session SessionFunc, timeout time.Duration, log *zap.Logger) *TaskT {
	return &TaskT{
		bot:     bot,
		cache:   cache,
		session: session,
		timeout: timeout,
		log:     log,
	}
}

// showTasks sends the tasks of the selected day with the day selector.
func (t *TaskT) showTasks(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	view := t.selectView(chatID)

	text, keyboard, ok := t.renderDay(chatID, view.Day)
	if !ok {
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg, t.log)
}

func (t *TaskT) selectView(chatID int64) models.ViewState {
	key := chatKey(chatID)
	view := t.cache.View(key)
	view.View = models.ViewTasks
	t.cache.SetView(key, view)
	return view
}

// renderDay fetches the tasks of day. A failed fetch was already reported to the chat.
func (t *TaskT) renderDay(chatID int64, day int) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	tasks, err := t.session(chatID).FetchTasks(ctx, models.DayFilter(day))
	if err != nil {
		t.log.Warn("failed to load day tasks", zap.Int64("chat_id", chatID), zap.Int("day", day), zap.Error(err))
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	return formatDayTasks(day, tasks), taskKeyboard(day, tasks), true
}

func (t *TaskT) handleTaskCallbackQuery(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	action, arg, _ := strings.Cut(query.Data, ":")
	session := t.session(chatID)
	view := t.selectView(chatID)

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	switch action {
	case callbackDay:
		day, err := strconv.Atoi(arg)
		if err != nil || !models.ValidDay(day) {
			t.log.Warn("invalid day in callback", zap.String("data", query.Data))
			return
		}
		view.Day = day
		t.cache.SetView(chatKey(chatID), view)

	case callbackTaskToggle:
		task, ok := session.Task(arg)
		if !ok {
			sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Task not found. Open the tasks again."), t.log)
			return
		}
		if _, err := session.ToggleTask(ctx, arg, !task.Completed); err != nil {
			t.log.Warn("failed to toggle task", zap.String("task_id", arg), zap.Error(err))
			return
		}

	case callbackTaskDelete:
		if err := session.DeleteTask(ctx, arg); err != nil {
			t.log.Warn("failed to delete task", zap.String("task_id", arg), zap.Error(err))
			return
		}

	default:
		t.log.Warn("unknown task callback", zap.String("data", query.Data))
		return
	}

	t.refreshDay(query.Message, view.Day)
}

func (t *TaskT) refreshDay(message *tgbotapi.Message, day int) {
	text, keyboard, ok := t.renderDay(message.Chat.ID, day)
	if !ok {
		return
	}

	editMsg := tgbotapi.NewEditMessageTextAndMarkup(message.Chat.ID, message.MessageID, text, keyboard)
	editMsg.ParseMode = tgbotapi.ModeMarkdown

	sendMessage(t.bot, editMsg, t.log)
}

// addTask creates a task on the selected day from "/addtask Title; Subject; ...".
func (t *TaskT) addTask(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	view := t.selectView(chatID)

	task, err := parseNewTask(message.CommandArguments(), view.Day)
	if err != nil {
		replyInvalid(t.bot, t.log, chatID, err, usageAddTask)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	if _, err := t.session(chatID).CreateTask(ctx, task); err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			replyInvalid(t.bot, t.log, chatID, err, usageAddTask)
			return
		}
		t.log.Warn("failed to add task", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	t.showTasks(message)
}

// editTask changes a task of the current list from "/edittask <n> field=value; ...".
func (t *TaskT) editTask(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	target, args := parseTarget(message.CommandArguments())
	if target == "" {
		replyInvalid(t.bot, t.log, chatID, models.ErrInvalidInput, usageEditTask)
		return
	}

	edit, err := parseTaskEdit(args)
	if err != nil {
		replyInvalid(t.bot, t.log, chatID, err, usageEditTask)
		return
	}

	session := t.session(chatID)
	tasks := session.Tasks()
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	updated, err := session.UpdateTask(ctx, resolveIndex(target, ids), edit)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			replyInvalid(t.bot, t.log, chatID, err, usageEditTask)
			return
		}
		t.log.Warn("failed to edit task", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	msg := tgbotapi.NewMessage(chatID, "✏️ Task updated: "+updated.Title)
	sendMessage(t.bot, msg, t.log)
	t.showTasks(message)
}

func replyInvalid(bot BotSender, log *zap.Logger, chatID int64, err error, usage string) {
	log.Debug("invalid input", zap.Int64("chat_id", chatID), zap.Error(err))
	msg := tgbotapi.NewMessage(chatID, "⚠️ "+err.Error()+"\n"+usage)
	sendMessage(bot, msg, log)
}
