package repositories

import (
	"time"

	"github.com/campusgig/platform-go/db"
	"github.com/campusgig/platform-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatRepo interface {
	GetOrCreateThread(threadID string, a, b uint) (models.ChatThread, error)
	GetThread(threadID string) (models.ChatThread, error)
	ListThreadsByUser(uid uint) ([]models.ChatThread, error)
	AppendMessage(msg *models.ChatMessage) error
	ListMessages(threadID string, limit int) ([]models.ChatMessage, error)
}

type DBChatRepo struct{}

func (r *DBChatRepo) GetOrCreateThread(threadID string, a, b uint) (models.ChatThread, error) {
	thread := models.ChatThread{ID: threadID, ParticipantA: a, ParticipantB: b}
	err := db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&thread).Error
	if err != nil {
		return thread, err
	}
	err = db.DB.First(&thread, "id = ?", threadID).Error
	return thread, err
}

func (r *DBChatRepo) GetThread(threadID string) (models.ChatThread, error) {
	var thread models.ChatThread
	err := db.DB.First(&thread, "id = ?", threadID).Error
	return thread, err
}

func (r *DBChatRepo) ListThreadsByUser(uid uint) ([]models.ChatThread, error) {
	var threads []models.ChatThread
	err := db.DB.Where("participant_a = ? OR participant_b = ?", uid, uid).
		Order("last_message_at DESC").Find(&threads).Error
	return threads, err
}

// AppendMessage writes the message and refreshes the thread metadata
// in one transaction.
func (r *DBChatRepo) AppendMessage(msg *models.ChatMessage) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&models.ChatThread{}).
			Where("id = ?", msg.ThreadID).
			Updates(map[string]interface{}{
				"last_message":    msg.Body,
				"last_message_at": time.Now(),
				"last_sender_id":  msg.SenderID,
			}).Error
	})
}

func (r *DBChatRepo) ListMessages(threadID string, limit int) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	q := db.DB.Where("thread_id = ?", threadID).Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&msgs).Error
	return msgs, err
}
