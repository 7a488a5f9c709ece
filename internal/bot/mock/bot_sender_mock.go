package mock_bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MockBot records every message sent through it. Err, when set, fails every Send.
type MockBot struct {
	mu           sync.Mutex
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable
	Err          error
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentMessages = append(m.SentMessages, c)
	if m.Err != nil {
		return tgbotapi.Message{}, m.Err
	}
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID(c)}}, nil
}

func (m *MockBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// Texts returns the text of every sent message and edit, in order.
func (m *MockBot) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	texts := make([]string, 0, len(m.SentMessages))
	for _, c := range m.SentMessages {
		switch msg := c.(type) {
		case tgbotapi.MessageConfig:
			texts = append(texts, msg.Text)
		case tgbotapi.EditMessageTextConfig:
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

func ClearSentMessages(bot *MockBot) {
	bot.mu.Lock()
	defer bot.mu.Unlock()
	bot.SentMessages = nil
	bot.Requests = nil
}

func chatID(c tgbotapi.Chattable) int64 {
	switch msg := c.(type) {
	case tgbotapi.MessageConfig:
		return msg.ChatID
	case tgbotapi.EditMessageTextConfig:
		return msg.ChatID
	}
	return 0
}
