package services

import (
	"github.com/campusgig/platform-go/config"
	"github.com/campusgig/platform-go/gateway"
	"github.com/campusgig/platform-go/repositories"
	"github.com/campusgig/platform-go/websocket"
)

type Services struct {
	User         *UserService
	Gig          *GigService
	Applicant    *ApplicantService
	Payment      *PaymentService
	Review       *ReviewService
	Discovery    *DiscoveryService
	Notification *NotificationService
	Chat         *ChatService
	Audit        *AuditService
}

func New(repos *repositories.Repos, gw gateway.Gateway) *Services {
	hub := websocket.DefaultHub
	notifier := NewNotificationService(repos, hub)
	audit := NewAuditService(repos)

	return &Services{
		User:         NewUserService(repos),
		Gig:          NewGigService(repos),
		Applicant:    NewApplicantService(repos, notifier),
		Payment:      NewPaymentService(repos, gw, config.CommissionRate, notifier, audit),
		Review:       NewReviewService(repos),
		Discovery:    NewDiscoveryService(repos, config.CommissionRate),
		Notification: notifier,
		Chat:         NewChatService(repos, hub),
		Audit:        audit,
	}
}
