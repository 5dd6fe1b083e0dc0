package services

import (
	"log"
	"strings"
	"unicode/utf8"

	"github.com/warungdigital/warung-backend/internal/models"
	"github.com/warungdigital/warung-backend/internal/storage"
)

// MaxMessageLength is the longest inbound message the bot accepts, in runes.
const MaxMessageLength = 500

const (
	invalidInputReply = "❌ Pesan tidak valid. Silakan kirim ulang pesan Anda (maksimal 500 karakter)."
	systemErrorReply  = "😔 Maaf, sistem sedang mengalami gangguan. Silakan coba lagi nanti."
	fallbackReply     = "Maaf, saya tidak mengerti. Ketik *menu* untuk melihat pilihan yang tersedia."
)

// BotService runs one dialog turn end to end: input validation, session
// load, dialog engine, error handling. This is what the transports call.
type BotService struct {
	sessions *SessionStore
	engine   *DialogEngine
}

// NewBotService wires the bot with its session store and dialog engine
func NewBotService(store storage.Store, sessions *SessionStore) *BotService {
	finalizer := NewOrderFinalizer(store)
	return &BotService{
		sessions: sessions,
		engine:   NewDialogEngine(store, finalizer),
	}
}

// Sessions exposes the session store for monitoring endpoints.
func (b *BotService) Sessions() *SessionStore {
	return b.sessions
}

// ProcessMessage handles one (message, phone) turn and returns the reply.
// The reply is always non-empty; errors never reach the user as raw text.
func (b *BotService) ProcessMessage(phone, message string) (string, error) {
	// Transport-level validation, before any session is touched. Logged with
	// its own tag so it is distinguishable from runtime failures.
	trimmed := strings.TrimSpace(message)
	if strings.TrimSpace(phone) == "" || trimmed == "" || utf8.RuneCountInString(trimmed) > MaxMessageLength {
		log.Printf("⛔ [input-validation] rejected message from %q (len=%d)", phone, utf8.RuneCountInString(trimmed))
		return invalidInputReply, nil
	}

	var reply string
	err := b.sessions.Do(phone, func(session *models.Session) error {
		var respondErr error
		reply, respondErr = b.engine.Respond(session, message)
		if respondErr != nil {
			// Store failure mid-turn: restart the conversation so no
			// half-filled draft lingers, apologize, keep the detail in
			// the log only.
			log.Printf("🚨 [runtime] dialog turn failed for %s: %v", phone, respondErr)
			session.Reset()
			reply = systemErrorReply
		}
		return nil
	})
	if err != nil {
		log.Printf("🚨 [runtime] session access failed for %s: %v", phone, err)
		return systemErrorReply, nil
	}

	// Safety net: the engine should never produce a blank reply, but if an
	// unhandled branch slips through the user still gets guidance.
	if strings.TrimSpace(reply) == "" {
		log.Printf("⚠️ empty reply produced for %s, substituting fallback", phone)
		reply = fallbackReply
	}

	return reply, nil
}
