package services

import (
	"context"
	"errors"
	"sync"

	"github.com/campusgig/platform-go/gateway"
	"github.com/campusgig/platform-go/models"
)

func ptrString(s string) *string { return &s }
func ptrUint(u uint) *uint       { return &u }

// fakeChatRepo backs the notifier in unit tests. Notifications are
// dispatched from a goroutine, so the fake signals every append on a
// channel the test can wait on.
type fakeChatRepo struct {
	mu       sync.Mutex
	messages []models.ChatMessage
	appended chan models.ChatMessage
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{appended: make(chan models.ChatMessage, 8)}
}

func (f *fakeChatRepo) GetOrCreateThread(threadID string, a, b uint) (models.ChatThread, error) {
	return models.ChatThread{ID: threadID, ParticipantA: a, ParticipantB: b}, nil
}

func (f *fakeChatRepo) GetThread(threadID string) (models.ChatThread, error) {
	return models.ChatThread{ID: threadID}, nil
}

func (f *fakeChatRepo) ListThreadsByUser(uid uint) ([]models.ChatThread, error) {
	return nil, nil
}

func (f *fakeChatRepo) AppendMessage(msg *models.ChatMessage) error {
	f.mu.Lock()
	f.messages = append(f.messages, *msg)
	f.mu.Unlock()
	f.appended <- *msg
	return nil
}

func (f *fakeChatRepo) ListMessages(threadID string, limit int) ([]models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ChatMessage(nil), f.messages...), nil
}

// fakeGateway satisfies gateway.Gateway without any HTTP. When fail is
// set every CreateIntent returns an error, mimicking an unreachable
// provider.
type fakeGateway struct {
	fail bool

	mu         sync.Mutex
	lastAmount int64
	lastMD     gateway.Metadata
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency, description string, md gateway.Metadata) (gateway.Intent, error) {
	if f.fail {
		return gateway.Intent{}, errors.New("connection refused")
	}
	f.mu.Lock()
	f.lastAmount = amountMinor
	f.lastMD = md
	f.mu.Unlock()
	return gateway.Intent{
		Reference:   md.Reference,
		CheckoutURL: "https://pay.example.com/" + md.Reference,
	}, nil
}
