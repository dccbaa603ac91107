package models

import "time"

type Review struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	GigID     uint   `gorm:"not null;uniqueIndex:idx_review_triple" json:"gig_id"`
	ClientID  uint   `gorm:"not null;uniqueIndex:idx_review_triple" json:"client_id"`
	StudentID uint   `gorm:"not null;uniqueIndex:idx_review_triple;index" json:"student_id"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string `gorm:"type:text" json:"comment,omitempty"`

	// The one field editable after creation: the student may reply,
	// and replying again overwrites the previous reply.
	StudentReply *string    `gorm:"type:text" json:"student_reply,omitempty"`
	RepliedAt    *time.Time `json:"replied_at,omitempty"`

	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
}
