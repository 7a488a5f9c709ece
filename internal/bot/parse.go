package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
)

func splitArgs(args string) []string {
	parts := strings.Split(args, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseNewTask reads "Title; Subject; [minutes]; [priority]; [description]".
func parseNewTask(args string, day int) (models.NewStudyTask, error) {
	parts := splitArgs(args)
	if len(parts) < 2 {
		return models.NewStudyTask{}, fmt.Errorf("%w: title and subject are required", models.ErrInvalidInput)
	}

	task := models.NewStudyTask{
		Title:     parts[0],
		Subject:   parts[1],
		DayOfWeek: day,
	}

	if len(parts) > 2 && parts[2] != "" {
		minutes, err := parseMinutes(parts[2])
		if err != nil {
			return models.NewStudyTask{}, err
		}
		task.DurationMinutes = &minutes
	}
	if len(parts) > 3 && parts[3] != "" {
		task.Priority = models.Priority(strings.ToLower(parts[3]))
	}
	if len(parts) > 4 {
		description := strings.Join(parts[4:], "; ")
		task.Description = &description
	}

	return task, nil
}

// parseNewCard reads "Question; Answer; Subject; [difficulty]".
func parseNewCard(args string) (models.NewFlashCard, error) {
	parts := splitArgs(args)
	if len(parts) < 3 {
		return models.NewFlashCard{}, fmt.Errorf("%w: question, answer and subject are required", models.ErrInvalidInput)
	}

	card := models.NewFlashCard{
		Question: parts[0],
		Answer:   parts[1],
		Subject:  parts[2],
	}
	if len(parts) > 3 && parts[3] != "" {
		card.Difficulty = models.Difficulty(strings.ToLower(parts[3]))
	}

	return card, nil
}

// parseTarget splits "<n> rest" into the list position or id and the remaining arguments.
func parseTarget(args string) (string, string) {
	args = strings.TrimSpace(args)
	target, rest, _ := strings.Cut(args, " ")
	return target, strings.TrimSpace(rest)
}

func parseFields(args string) (map[string]string, error) {
	fields := make(map[string]string)
	for _, part := range splitArgs(args) {
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: expected field=value, got %q", models.ErrInvalidInput, part)
		}
		fields[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to change", models.ErrInvalidInput)
	}
	return fields, nil
}

func parseTaskEdit(args string) (models.TaskEdit, error) {
	fields, err := parseFields(args)
	if err != nil {
		return models.TaskEdit{}, err
	}

	var edit models.TaskEdit
	for key, value := range fields {
		switch key {
		case "title":
			edit.Title = &value
		case "subject":
			edit.Subject = &value
		case "description":
			edit.Description = &value
		case "priority":
			priority := models.Priority(strings.ToLower(value))
			edit.Priority = &priority
		case "day":
			day, err := parseDay(value)
			if err != nil {
				return models.TaskEdit{}, err
			}
			edit.DayOfWeek = &day
		case "minutes":
			minutes, err := parseMinutes(value)
			if err != nil {
				return models.TaskEdit{}, err
			}
			edit.DurationMinutes = &minutes
		default:
			return models.TaskEdit{}, fmt.Errorf("%w: unknown task field %q", models.ErrInvalidInput, key)
		}
	}

	return edit, nil
}

func parseCardEdit(args string) (models.CardEdit, error) {
	fields, err := parseFields(args)
	if err != nil {
		return models.CardEdit{}, err
	}

	var edit models.CardEdit
	for key, value := range fields {
		switch key {
		case "question":
			edit.Question = &value
		case "answer":
			edit.Answer = &value
		case "subject":
			edit.Subject = &value
		case "difficulty":
			difficulty := models.Difficulty(strings.ToLower(value))
			edit.Difficulty = &difficulty
		default:
			return models.CardEdit{}, fmt.Errorf("%w: unknown card field %q", models.ErrInvalidInput, key)
		}
	}

	return edit, nil
}

func parseMinutes(s string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "m"))
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("%w: minutes must be a positive number, got %q", models.ErrInvalidInput, s)
	}
	return minutes, nil
}

// parseDay accepts a day number (0 is Sunday) or a day name of at least three letters.
func parseDay(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if day, err := strconv.Atoi(s); err == nil {
		if !models.ValidDay(day) {
			return 0, fmt.Errorf("%w: day must be between 0 and 6, got %d", models.ErrInvalidInput, day)
		}
		return day, nil
	}

	if len(s) >= 3 {
		for day := models.Sunday; day <= models.Saturday; day++ {
			if strings.HasPrefix(strings.ToLower(models.DayName(day)), s) {
				return day, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: unknown day %q", models.ErrInvalidInput, s)
}

// resolveIndex maps a 1-based list position to an id. Anything else is taken as an id.
func resolveIndex(target string, ids []string) string {
	n, err := strconv.Atoi(target)
	if err != nil || n < 1 || n > len(ids) {
		return target
	}
	return ids[n-1]
}
