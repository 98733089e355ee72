package main

import (
	"sync"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
	IsError bool   `json:"is_error,omitempty"`
}

// ChatLog is the ordered, append-only record of the visible conversation.
// Messages are never mutated after they are added; the log lives as long as
// the session that owns it.
type ChatLog struct {
	mu       sync.Mutex
	messages []ChatMessage
}

func NewChatLog() *ChatLog {
	return &ChatLog{}
}

func (l *ChatLog) Append(role, content string, isError bool) ChatMessage {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := ChatMessage{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
		IsError: isError,
	}
	l.messages = append(l.messages, message)

	return message
}

// Messages returns a copy of the history in insertion order.
func (l *ChatLog) Messages() []ChatMessage {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]ChatMessage, len(l.messages))
	copy(out, l.messages)

	return out
}

func (l *ChatLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.messages)
}

// WebSocketsMessage is the envelope for frames sent to the chat page.
type WebSocketsMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type ChatRequest struct {
	Content string `json:"content"`
}

type SaveKeysRequest struct {
	OpenAIKey string `json:"openai_key"`
	PlacesKey string `json:"places_key"`
}
