package store

import (
	"context"
	"encoding/json"

	"karigar-api/internal/model"
	"karigar-api/pkg/uid"
)

func (s *Store) loadChats(ctx context.Context) ([]model.ChatMessage, error) {
	raw, err := s.read(ctx, keyChats)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []model.ChatMessage{}, nil
	}

	var chats []model.ChatMessage
	if err := json.Unmarshal(raw, &chats); err != nil {
		if resetErr := s.resetCorrupted(ctx, keyChats, err); resetErr != nil {
			return nil, resetErr
		}
		return []model.ChatMessage{}, nil
	}
	return chats, nil
}

// SaveChatMessage appends one user/assistant exchange and fires the chat_sent
// event.
func (s *Store) SaveChatMessage(ctx context.Context, message, response string) (*model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chats, err := s.loadChats(ctx)
	if err != nil {
		return nil, err
	}

	chat := model.ChatMessage{
		ID:        uid.New(),
		Message:   message,
		Response:  response,
		Timestamp: s.timestamp(),
	}
	chats = append(chats, chat)

	if err := s.write(ctx, keyChats, chats); err != nil {
		return nil, err
	}
	if err := s.applyEvent(ctx, model.EventChatSent); err != nil {
		return nil, err
	}
	return &chat, nil
}

// GetChats returns the chat history in insertion order.
func (s *Store) GetChats(ctx context.Context) ([]model.ChatMessage, error) {
	return s.loadChats(ctx)
}

// ClearChats resets the collection to empty. Analytics totals are not rolled
// back.
func (s *Store) ClearChats(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, keyChats, []model.ChatMessage{})
}
