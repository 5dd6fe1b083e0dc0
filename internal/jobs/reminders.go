package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/warungdigital/warung-backend/internal/models"
	"github.com/warungdigital/warung-backend/internal/services"
	"github.com/warungdigital/warung-backend/internal/storage"
	"github.com/warungdigital/warung-backend/internal/utils"
)

// ReminderJob periodically nudges customers whose orders are still pending.
type ReminderJob struct {
	store    storage.Store
	sender   services.MessageSender
	interval time.Duration
	stop     chan struct{}
}

// NewReminderJob creates a reminder job over the given store and sender
func NewReminderJob(store storage.Store, sender services.MessageSender, interval time.Duration) *ReminderJob {
	return &ReminderJob{
		store:    store,
		sender:   sender,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins the reminder loop in the background
func (r *ReminderJob) Start() {
	if r.sender == nil {
		log.Println("⚠️  Reminder job disabled - WhatsApp sending not configured")
		return
	}

	log.Printf("⏰ Pending-order reminder job started (every %v)", r.interval)
	go r.run()
}

// Stop halts the reminder loop
func (r *ReminderJob) Stop() {
	close(r.stop)
	log.Println("⏹️  Reminder job stopped")
}

func (r *ReminderJob) run() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.remindPendingOrders()
		case <-r.stop:
			return
		}
	}
}

// remindPendingOrders messages customers whose pending orders are older than
// one reminder interval.
func (r *ReminderJob) remindPendingOrders() {
	orders, err := r.store.GetOrdersByStatus(models.OrderStatusPending)
	if err != nil {
		log.Printf("🚨 Reminder job: failed to list pending orders: %v", err)
		return
	}

	cutoff := time.Now().Add(-r.interval)
	reminded := 0
	for _, order := range orders {
		if order.OrderDate.After(cutoff) {
			continue
		}

		message := fmt.Sprintf(`⏰ *Pengingat Pesanan*

🆔 Nomor Pesanan: #%d
🍽️ Produk: %s
💳 Total: %s

Pesanan Anda masih menunggu konfirmasi pembayaran. Tim kami siap membantu jika ada kendala. 🙏`,
			order.ID, order.ProductName, utils.FormatRupiah(order.TotalAmount))

		if err := r.sender.SendWhatsAppMessage(order.PhoneNumber, message); err != nil {
			log.Printf("❌ Reminder to %s failed: %v", order.PhoneNumber, err)
			continue
		}
		reminded++
	}

	if reminded > 0 {
		log.Printf("⏰ Sent %d pending-order reminders", reminded)
	}
}
