package services

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
)

// MessageSender delivers an outbound WhatsApp message. Satisfied by
// TwilioService; tests substitute a fake.
type MessageSender interface {
	SendWhatsAppMessage(to string, message string) error
}

// BroadcastResult records the delivery outcome for one phone number.
type BroadcastResult struct {
	Phone  string `json:"phone"`
	Status string `json:"status"` // "sent" or "failed"
}

// BroadcastService fans one message out to many recipients.
type BroadcastService struct {
	sender MessageSender
}

// NewBroadcastService creates a broadcast service over the given sender
func NewBroadcastService(sender MessageSender) *BroadcastService {
	return &BroadcastService{sender: sender}
}

// Send delivers message to every phone number with bounded concurrency and
// reports per-recipient results in input order. A failed send marks that
// recipient failed but never aborts the rest of the batch.
func (b *BroadcastService) Send(ctx context.Context, message string, phones []string) []BroadcastResult {
	results := make([]BroadcastResult, len(phones))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(5)

	for i, phone := range phones {
		i, phone := i, phone
		g.Go(func() error {
			status := "sent"
			if err := b.sender.SendWhatsAppMessage(phone, message); err != nil {
				log.Printf("❌ Broadcast to %s failed: %v", phone, err)
				status = "failed"
			}
			results[i] = BroadcastResult{Phone: phone, Status: status}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
