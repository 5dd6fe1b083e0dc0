package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warungdigital/warung-backend/internal/services"
)

type fakeSender struct {
	mu     sync.Mutex
	sent   []string
	failOn map[string]bool
}

func (f *fakeSender) SendWhatsAppMessage(to, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn[to] {
		return errors.New("delivery failed")
	}
	f.sent = append(f.sent, to)
	return nil
}

func TestBroadcastReportsPerRecipientResults(t *testing.T) {
	sender := &fakeSender{failOn: map[string]bool{"628222": true}}
	broadcast := services.NewBroadcastService(sender)

	phones := []string{"628111", "628222", "628333"}
	results := broadcast.Send(context.Background(), "Promo hari ini!", phones)

	// Results come back in input order regardless of send order
	assert.Len(t, results, 3)
	assert.Equal(t, services.BroadcastResult{Phone: "628111", Status: "sent"}, results[0])
	assert.Equal(t, services.BroadcastResult{Phone: "628222", Status: "failed"}, results[1])
	assert.Equal(t, services.BroadcastResult{Phone: "628333", Status: "sent"}, results[2])

	assert.ElementsMatch(t, []string{"628111", "628333"}, sender.sent)
}

func TestBroadcastEmptyList(t *testing.T) {
	broadcast := services.NewBroadcastService(&fakeSender{})
	results := broadcast.Send(context.Background(), "Promo", nil)
	assert.Empty(t, results)
}
