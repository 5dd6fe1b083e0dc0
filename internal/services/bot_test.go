package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungdigital/warung-backend/internal/models"
	"github.com/warungdigital/warung-backend/internal/services"
	"github.com/warungdigital/warung-backend/internal/storage"
)

func newTestBot(store storage.Store) (*services.BotService, *services.SessionStore) {
	sessions := services.NewSessionStore()
	return services.NewBotService(store, sessions), sessions
}

// Scenario: full happy path from greeting to committed order.
func TestCompleteOrderFlow(t *testing.T) {
	store := newTestStore(t, kopiArabika())
	bot, sessions := newTestBot(store)
	phone := "628111"

	send := func(message string) string {
		reply, err := bot.ProcessMessage(phone, message)
		require.NoError(t, err)
		require.NotEmpty(t, reply)
		return reply
	}

	reply := send("halo")
	assert.Contains(t, reply, menuMarker)
	assert.Equal(t, models.StepMainMenu, sessions.Peek(phone).Step)

	reply = send("2")
	assert.Contains(t, reply, "PESAN MAKANAN")
	assert.Equal(t, models.StepAwaitingProduct, sessions.Peek(phone).Step)

	reply = send("kopi arabika")
	assert.Contains(t, reply, "Kopi Arabika")
	assert.Equal(t, models.StepAwaitingQty, sessions.Peek(phone).Step)

	reply = send("2")
	assert.Contains(t, reply, "50000")
	assert.Equal(t, models.StepAwaitingName, sessions.Peek(phone).Step)

	reply = send("Budi")
	assert.Contains(t, reply, "alamat")
	assert.Equal(t, models.StepAwaitingAddress, sessions.Peek(phone).Step)

	reply = send("Jl. Mawar No.1")
	assert.Contains(t, reply, "PESANAN BERHASIL")
	assert.Contains(t, reply, "#1")
	assert.Contains(t, reply, "50000")

	session := sessions.Peek(phone)
	assert.Equal(t, models.StepGreeting, session.Step)
	assert.Equal(t, models.OrderDraft{}, session.Draft)

	orders, err := store.GetAllOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, float64(50000), orders[0].TotalAmount)
}

// Scenario: quantity above stock keeps asking and names the available stock.
func TestQuantityExceedsStock(t *testing.T) {
	store := newTestStore(t, kopiArabika())
	bot, sessions := newTestBot(store)
	phone := "628222"

	for _, message := range []string{"halo", "2", "kopi arabika"} {
		_, err := bot.ProcessMessage(phone, message)
		require.NoError(t, err)
	}

	reply, err := bot.ProcessMessage(phone, "999")
	require.NoError(t, err)
	assert.Contains(t, reply, "Stok tersedia: 10")
	assert.Equal(t, models.StepAwaitingQty, sessions.Peek(phone).Step)
}

// Scenario: "pesan keripik" from the greeting goes straight to quantity.
func TestShortcutOrderWithPesanKeyword(t *testing.T) {
	store := newTestStore(t, models.ProductInput{Name: "Keripik Singkong", Price: 8000, Stock: 40, Category: "Snack"})
	bot, sessions := newTestBot(store)
	phone := "628333"

	reply, err := bot.ProcessMessage(phone, "pesan keripik")
	require.NoError(t, err)

	session := sessions.Peek(phone)
	assert.Equal(t, models.StepAwaitingQty, session.Step)
	require.NotNil(t, session.Draft.Product)
	assert.Equal(t, "Keripik Singkong", session.Draft.Product.Name)
	assert.Contains(t, reply, "Berapa jumlah")
}

func TestInputValidationRejectsBeforeDialog(t *testing.T) {
	store := newTestStore(t, kopiArabika())
	bot, sessions := newTestBot(store)
	phone := "628444"

	// Establish a known step first
	_, err := bot.ProcessMessage(phone, "halo")
	require.NoError(t, err)
	require.Equal(t, models.StepMainMenu, sessions.Peek(phone).Step)

	tests := []struct {
		name    string
		phone   string
		message string
	}{
		{"message too long", phone, strings.Repeat("a", 600)},
		{"blank message", phone, "   "},
		{"empty message", phone, ""},
		{"empty phone", "", "halo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := bot.ProcessMessage(tt.phone, tt.message)
			require.NoError(t, err)
			assert.Contains(t, reply, "tidak valid")
		})
	}

	// The session was never touched by the rejected turns
	assert.Equal(t, models.StepMainMenu, sessions.Peek(phone).Step)
	assert.Nil(t, sessions.Peek(""))
}

func TestStoreFailureProducesApologyAndReset(t *testing.T) {
	store := newTestStore(t, kopiArabika())
	bot, sessions := newTestBot(&failingOrderStore{Store: store})
	phone := "628555"

	for _, message := range []string{"kopi arabika", "2", "Budi"} {
		_, err := bot.ProcessMessage(phone, message)
		require.NoError(t, err)
	}
	require.Equal(t, models.StepAwaitingAddress, sessions.Peek(phone).Step)

	reply, err := bot.ProcessMessage(phone, "Jl. Mawar No.1")
	require.NoError(t, err)

	// User gets a corrective apology, never the underlying error text
	assert.Contains(t, reply, "gangguan")
	assert.NotContains(t, reply, "database")

	session := sessions.Peek(phone)
	assert.Equal(t, models.StepGreeting, session.Step)
	assert.Equal(t, models.OrderDraft{}, session.Draft)
}

func TestSessionsAreIsolatedPerPhone(t *testing.T) {
	store := newTestStore(t, kopiArabika())
	bot, sessions := newTestBot(store)

	_, err := bot.ProcessMessage("628111", "kopi arabika")
	require.NoError(t, err)
	_, err = bot.ProcessMessage("628222", "halo")
	require.NoError(t, err)

	assert.Equal(t, models.StepAwaitingQty, sessions.Peek("628111").Step)
	assert.Equal(t, models.StepMainMenu, sessions.Peek("628222").Step)
	assert.Nil(t, sessions.Peek("628222").Draft.Product)
}

func TestReplyIsNeverEmpty(t *testing.T) {
	store := newTestStore(t, kopiArabika())
	bot, _ := newTestBot(store)

	inputs := []string{"halo", "1", "2", "3", "4", "kopi", "xyz", "0", "pesan kopi", "menu"}
	for _, message := range inputs {
		reply, err := bot.ProcessMessage("628777", message)
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(reply), "input %q produced a blank reply", message)
	}
}
