package testutil

import (
	"context"
	"sync"

	"github.com/onemapafrica/member-hub-api/internal/shared/mail"
)

// MockMailSender records sent messages instead of contacting SendGrid
type MockMailSender struct {
	mu       sync.Mutex
	SendFunc func(ctx context.Context, msg *mail.Message) error
	Sent     []*mail.Message
}

func NewMockMailSender() *MockMailSender {
	return &MockMailSender{}
}

func (m *MockMailSender) Send(ctx context.Context, msg *mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SendFunc != nil {
		if err := m.SendFunc(ctx, msg); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// SentCount returns the number of delivered messages
func (m *MockMailSender) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}

// Ensure MockMailSender implements mail.Sender
var _ mail.Sender = (*MockMailSender)(nil)
