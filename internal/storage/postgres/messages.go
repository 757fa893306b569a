package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/josh-stephens/youtube-summary-agent/internal/storage/models"
)

// MessageRepository persists conversation records straight to Postgres,
// for deployments that bypass the Supabase REST layer.
type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Append inserts one conversation record into the messages table.
func (r *MessageRepository) Append(ctx context.Context, rec models.ConversationRecord) error {
	const query = `
		INSERT INTO messages (id, created_at, session_id, message)
		VALUES ($1, CURRENT_TIMESTAMP, $2, $3)
	`

	payload, err := json.Marshal(rec.Payload())
	if err != nil {
		return fmt.Errorf("marshal message payload: %w", err)
	}

	// lib/pq sends []byte as bytea; jsonb columns need the text form.
	if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), rec.SessionID, string(payload)); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}
