package models

import "time"

// ConversationRecord is one completed agent turn. Records are append-only;
// nothing in the service updates or deletes them.
type ConversationRecord struct {
	SessionID string
	Query     string
	Response  string
	Video     VideoContext
}

// VideoContext is the structured context attached to a stored turn.
type VideoContext struct {
	VideoID     string    `json:"video_id"`
	Title       string    `json:"video_title"`
	PublishedAt time.Time `json:"published_at"`
	Description string    `json:"video_description"`
}

// MessagePayload mirrors the jsonb layout of the messages.message column.
type MessagePayload struct {
	Query    string       `json:"query"`
	Response string       `json:"response"`
	Data     VideoContext `json:"data"`
}

// Payload returns the record in its storage shape.
func (r ConversationRecord) Payload() MessagePayload {
	return MessagePayload{Query: r.Query, Response: r.Response, Data: r.Video}
}
