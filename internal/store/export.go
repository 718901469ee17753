package store

import (
	"context"
	"encoding/json"
	"fmt"

	"karigar-api/internal/model"
)

// Export is the downloadable snapshot of a store namespace.
type Export struct {
	User       *model.User         `json:"user"`
	Products   []model.Product     `json:"products"`
	Chats      []model.ChatMessage `json:"chats"`
	Analytics  model.Analytics     `json:"analytics"`
	ExportedAt string              `json:"exportedAt"`
}

// importPayload mirrors Export with optional fields; only the collections
// present in the input are applied.
type importPayload struct {
	Products  *[]model.Product     `json:"products"`
	Chats     *[]model.ChatMessage `json:"chats"`
	Analytics *model.Analytics     `json:"analytics"`
}

// ExportData serializes the profile, products, chats and analytics together
// with an export timestamp.
func (s *Store) ExportData(ctx context.Context) ([]byte, error) {
	user, err := s.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	chats, err := s.GetChats(ctx)
	if err != nil {
		return nil, err
	}
	analytics, err := s.GetAnalytics(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := Export{
		User:       user,
		Products:   products,
		Chats:      chats,
		Analytics:  analytics,
		ExportedAt: s.timestamp(),
	}
	return json.MarshalIndent(snapshot, "", "  ")
}

// ImportData overwrites the products, chats and analytics collections from a
// previously exported snapshot. The profile is intentionally not restored.
// The payload is parsed in full before any write, so a malformed input
// mutates nothing; the individual collection writes are not atomic with each
// other.
func (s *Store) ImportData(ctx context.Context, data []byte) error {
	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to parse import payload: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.Products != nil {
		if err := s.write(ctx, keyProducts, *payload.Products); err != nil {
			return err
		}
	}
	if payload.Chats != nil {
		if err := s.write(ctx, keyChats, *payload.Chats); err != nil {
			return err
		}
	}
	if payload.Analytics != nil {
		if err := s.write(ctx, keyAnalytics, *payload.Analytics); err != nil {
			return err
		}
	}
	return nil
}
