package services

import (
	"errors"

	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/repositories"
	"github.com/campusgig/platform-go/utils"
	"github.com/campusgig/platform-go/websocket"
	"gorm.io/gorm"
)

var ErrNotParticipant = errors.New("user is not a participant of this thread")

type ChatService struct {
	Repos *repositories.Repos
	hub   *websocket.Hub
}

func NewChatService(repos *repositories.Repos, hub *websocket.Hub) *ChatService {
	return &ChatService{Repos: repos, hub: hub}
}

func (s *ChatService) ListThreads(uid uint) ([]models.ChatThread, error) {
	return s.Repos.Chat.ListThreadsByUser(uid)
}

func (s *ChatService) authorize(threadID string, uid uint) (models.ChatThread, error) {
	thread, err := s.Repos.Chat.GetThread(threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return thread, ErrNotParticipant
		}
		return thread, err
	}
	if thread.ParticipantA != uid && thread.ParticipantB != uid {
		return thread, ErrNotParticipant
	}
	return thread, nil
}

func (s *ChatService) ListMessages(threadID string, uid uint, limit int) ([]models.ChatMessage, error) {
	if _, err := s.authorize(threadID, uid); err != nil {
		return nil, err
	}
	return s.Repos.Chat.ListMessages(threadID, limit)
}

// SendMessage appends a user message to an existing thread, or opens
// the thread with the peer named by peerID when it does not exist yet.
func (s *ChatService) SendMessage(uid, peerID uint, body string) (models.ChatMessage, error) {
	threadID := utils.ThreadID(uid, peerID)
	if _, err := s.Repos.Chat.GetOrCreateThread(threadID, min(uid, peerID), max(uid, peerID)); err != nil {
		return models.ChatMessage{}, err
	}

	msg := models.ChatMessage{
		ThreadID: threadID,
		SenderID: uid,
		Body:     body,
	}
	if err := s.Repos.Chat.AppendMessage(&msg); err != nil {
		return models.ChatMessage{}, err
	}

	s.hub.Broadcast(msg)
	return msg, nil
}

// Authorize exposes thread membership checks to the websocket handler.
func (s *ChatService) Authorize(threadID string, uid uint) error {
	_, err := s.authorize(threadID, uid)
	return err
}
