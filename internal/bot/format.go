package bot

import (
	"fmt"
	"strings"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	usageAddTask  = "Usage: /addtask Title; Subject; [minutes]; [priority]; [description]"
	usageEditTask = "Usage: /edittask <n> title=...; subject=...; day=monday; priority=high; minutes=30; description=..."
	usageAddCard  = "Usage: /addcard Question; Answer; Subject; [difficulty]"
	usageEditCard = "Usage: /editcard <n> question=...; answer=...; subject=...; difficulty=hard"
)

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func shortDayName(day int) string {
	return models.DayName(day)[:3]
}

// formatDuration renders minutes as hours and minutes, like "1h 30m".
func formatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

func priorityIcon(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return "🔴"
	case models.PriorityLow:
		return "🟢"
	default:
		return "🟡"
	}
}

func formatDayTasks(day int, tasks []models.StudyTask) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 *%s*\n\n", models.DayName(day))

	if len(tasks) == 0 {
		sb.WriteString("No tasks for this day.\n")
		sb.WriteString(escape(usageAddTask))
		return sb.String()
	}

	for i, task := range tasks {
		check := "⬜"
		if task.Completed {
			check = "✅"
		}
		fmt.Fprintf(&sb, "%d. %s *%s*\n", i+1, check, escape(task.Title))
		fmt.Fprintf(&sb, "    %s %s · 📚 %s", priorityIcon(task.Priority), task.Priority, escape(task.Subject))
		if task.DurationMinutes != nil {
			fmt.Fprintf(&sb, " · ⏱ %s", formatDuration(*task.DurationMinutes))
		}
		sb.WriteString("\n")
		if task.Description != nil {
			fmt.Fprintf(&sb, "    _%s_\n", escape(*task.Description))
		}
	}

	return sb.String()
}

func taskKeyboard(day int, tasks []models.StudyTask) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	for i, task := range tasks {
		toggle := fmt.Sprintf("⬜ %d", i+1)
		if task.Completed {
			toggle = fmt.Sprintf("✅ %d", i+1)
		}
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggle, callbackTaskToggle+":"+task.ID),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🗑 %d", i+1), callbackTaskDelete+":"+task.ID),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(append(buttons, daySelector(day)...)...)
}

// daySelector lists the week Monday first in two rows.
func daySelector(selected int) [][]tgbotapi.InlineKeyboardButton {
	rows := make([][]tgbotapi.InlineKeyboardButton, 2)
	for i, day := range models.WeekOrder {
		label := shortDayName(day)
		if day == selected {
			label = "• " + label
		}
		row := i / 4
		rows[row] = append(rows[row], tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s:%d", callbackDay, day)))
	}
	return rows
}

func formatCardFront(card models.FlashCard, pos, total int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🧠 Card %d/%d · %s · %s\n", pos, total, escape(card.Subject), card.Difficulty)
	if card.Mastered {
		sb.WriteString("🏆 Mastered\n")
	}
	fmt.Fprintf(&sb, "\n❓ *%s*", escape(card.Question))
	return sb.String()
}

func formatCardBack(card models.FlashCard, pos, total int) string {
	return fmt.Sprintf("%s\n\n💡 %s", formatCardFront(card, pos, total), escape(card.Answer))
}

func formatReview(card models.FlashCard, wasCorrect bool) string {
	var sb strings.Builder
	if wasCorrect {
		sb.WriteString("✅ Right!")
	} else {
		sb.WriteString("❌ Wrong, keep practicing.")
	}
	fmt.Fprintf(&sb, " Reviews: %d", card.ReviewCount)
	if card.Mastered {
		sb.WriteString("\n🏆 Card mastered!")
	}
	return sb.String()
}

func cardFrontKeyboard(id string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👁 Show answer", callbackCardShow+":"+id),
		),
		cardNavRow(id),
	)
}

func cardBackKeyboard(id string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Right", callbackCardRight+":"+id),
			tgbotapi.NewInlineKeyboardButtonData("❌ Wrong", callbackCardWrong+":"+id),
		),
		cardNavRow(id),
	)
}

func cardNavRow(id string) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏭ Next", callbackCardNext+":"+id),
		tgbotapi.NewInlineKeyboardButtonData("🗑 Delete", callbackCardDelete+":"+id),
	)
}

func formatNoCards() string {
	return "🧠 No flash cards yet.\n" + escape(usageAddCard)
}

func formatStats(stats models.Stats) string {
	var sb strings.Builder
	sb.WriteString("📊 *Statistics*\n\n")
	fmt.Fprintf(&sb, "✅ Completed tasks: %d/%d (%.1f%%)\n", stats.CompletedTasks, stats.TotalTasks, stats.CompletionRate)
	fmt.Fprintf(&sb, "⏱ Study time: %s\n", formatDuration(stats.TotalStudyTime))
	fmt.Fprintf(&sb, "⭐ Favorite subject: %s\n", escape(stats.FavoriteSubject))
	fmt.Fprintf(&sb, "🧠 Mastered cards: %d/%d (%.1f%%)\n\n", stats.MasteredCards, stats.TotalCards, stats.CardMasteryRate)

	sb.WriteString("📅 Completed by day:\n")
	for _, day := range models.WeekOrder {
		fmt.Fprintf(&sb, "%s: %d\n", models.DayName(day), stats.WeeklyDistribution[day])
	}

	return sb.String()
}
