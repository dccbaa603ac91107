package models

import "time"

// SystemSenderID marks messages authored by the platform itself
// (applicant decisions, payment confirmations).
const SystemSenderID uint = 0

// ChatThread ids are derived from the sorted participant pair, so
// lookup never needs a query over participants.
type ChatThread struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	ParticipantA  uint      `gorm:"not null;index" json:"participant_a"`
	ParticipantB  uint      `gorm:"not null;index" json:"participant_b"`
	LastMessage   string    `gorm:"type:text" json:"last_message"`
	LastMessageAt time.Time `json:"last_message_at"`
	LastSenderID  uint      `json:"last_sender_id"`
	CreatedAt     time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ThreadID  string    `gorm:"size:64;not null;index" json:"thread_id"`
	SenderID  uint      `gorm:"not null" json:"sender_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	System    bool      `gorm:"default:false" json:"system"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
}
