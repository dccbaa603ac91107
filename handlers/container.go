package handlers

import (
	"github.com/campusgig/platform-go/services"
	"github.com/campusgig/platform-go/websocket"
)

type Handlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Gig       *GigHandler
	Payment   *PaymentHandler
	Review    *ReviewHandler
	Discovery *DiscoveryHandler
	Chat      *ChatHandler
	WS        *WSHandler
	Audit     *AuditHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(svc.User),
		User:      NewUserHandler(svc.User),
		Gig:       NewGigHandler(svc.Gig, svc.Applicant),
		Payment:   NewPaymentHandler(svc.Payment),
		Review:    NewReviewHandler(svc.Review),
		Discovery: NewDiscoveryHandler(svc.Discovery),
		Chat:      NewChatHandler(svc.Chat),
		WS:        NewWSHandler(svc.Chat, websocket.DefaultHub),
		Audit:     NewAuditHandler(svc.Audit),
	}
}
