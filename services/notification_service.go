package services

import (
	"fmt"

	"github.com/campusgig/platform-go/metrics"
	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/repositories"
	"github.com/campusgig/platform-go/utils"
	"github.com/campusgig/platform-go/websocket"
	"github.com/sirupsen/logrus"
)

type NotificationKind string

const (
	NotificationDecision         NotificationKind = "decision"
	NotificationPaymentConfirmed NotificationKind = "payment_confirmed"
)

type NotificationEvent struct {
	Kind      NotificationKind
	GigID     uint
	GigTitle  string
	ClientID  uint
	StudentID uint
	Decision  models.ApplicantStatus
}

// NotificationService writes system messages into the chat thread
// between the gig's client and student. It runs after the triggering
// mutation committed and its failures are logged, never propagated.
type NotificationService struct {
	Repos *repositories.Repos
	hub   *websocket.Hub
	log   *logrus.Entry
}

func NewNotificationService(repos *repositories.Repos, hub *websocket.Hub) *NotificationService {
	return &NotificationService{
		Repos: repos,
		hub:   hub,
		log:   logrus.WithField("component", "notifier"),
	}
}

func (s *NotificationService) Dispatch(ev NotificationEvent) {
	body := s.messageBody(ev)
	if body == "" {
		return
	}

	threadID := utils.ThreadID(ev.ClientID, ev.StudentID)
	if _, err := s.Repos.Chat.GetOrCreateThread(threadID, ev.ClientID, ev.StudentID); err != nil {
		s.fail(ev, threadID, err)
		return
	}

	msg := models.ChatMessage{
		ThreadID: threadID,
		SenderID: models.SystemSenderID,
		Body:     body,
		System:   true,
	}
	if err := s.Repos.Chat.AppendMessage(&msg); err != nil {
		s.fail(ev, threadID, err)
		return
	}

	s.hub.Broadcast(msg)
}

func (s *NotificationService) messageBody(ev NotificationEvent) string {
	switch ev.Kind {
	case NotificationDecision:
		switch ev.Decision {
		case models.ApplicantStatusAccepted:
			return fmt.Sprintf("Your application for %q was accepted. The gig is now in progress.", ev.GigTitle)
		case models.ApplicantStatusRejected:
			return fmt.Sprintf("Your application for %q was not selected this time.", ev.GigTitle)
		}
	case NotificationPaymentConfirmed:
		return fmt.Sprintf("Payment for %q has been received. The gig is now completed.", ev.GigTitle)
	}
	return ""
}

func (s *NotificationService) fail(ev NotificationEvent, threadID string, err error) {
	metrics.NotificationFailures.Inc()
	s.log.WithFields(logrus.Fields{
		"kind":      ev.Kind,
		"gig_id":    ev.GigID,
		"thread_id": threadID,
	}).WithError(err).Warn("notification write failed, continuing")
}
