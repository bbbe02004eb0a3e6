package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/store"
)

// ChatRepository persists AI conversations. Messages live in one flat
// table and are grouped by (matterId, firmId) on read; saving a
// conversation replaces that group and leaves every other group
// untouched.
type ChatRepository struct {
	kv       store.KV
	audit    *AuditRepository
	identity Identity
}

// NewChatRepository creates a new chat repository
func NewChatRepository(kv store.KV, audit *AuditRepository, identity Identity) *ChatRepository {
	return &ChatRepository{kv: kv, audit: audit, identity: identity}
}

func (r *ChatRepository) readAll(ctx context.Context) ([]*models.ChatMessage, error) {
	payload, err := r.kv.Get(ctx, store.TableKey(store.TableChatHistory))
	if err != nil {
		return nil, fmt.Errorf("read chat history: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}

	var messages []*models.ChatMessage
	if err := json.Unmarshal(payload, &messages); err != nil {
		return nil, nil
	}
	return messages, nil
}

// History returns the caller's conversation for one matter.
func (r *ChatRepository) History(ctx context.Context, matterID string) ([]*models.ChatMessage, error) {
	firmID := r.identity.CurrentFirmID(ctx)
	messages, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []*models.ChatMessage
	for _, m := range messages {
		if m.MatterID == matterID && m.FirmID == firmID {
			out = append(out, m)
		}
	}
	return out, nil
}

// SaveHistory replaces the caller's conversation for one matter.
func (r *ChatRepository) SaveHistory(ctx context.Context, matterID string, messages []*models.ChatMessage) error {
	firmID := r.identity.CurrentFirmID(ctx)
	all, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, m := range all {
		if m.MatterID == matterID && m.FirmID == firmID {
			continue
		}
		kept = append(kept, m)
	}
	for _, m := range messages {
		m.FirmID = firmID
		m.MatterID = matterID
		kept = append(kept, m)
	}

	payload, err := json.Marshal(kept)
	if err != nil {
		return fmt.Errorf("marshal chat history: %w", err)
	}
	if err := r.kv.Set(ctx, store.TableKey(store.TableChatHistory), payload); err != nil {
		return fmt.Errorf("write chat history: %w", err)
	}

	return r.audit.Log(ctx, firmID, r.identity.CurrentUserID(ctx), "SAVE_CHAT_HISTORY", map[string]any{
		"matterId": matterID,
		"messages": len(messages),
	})
}
