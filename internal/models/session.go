package models

import "time"

// Step is the position of a conversation inside the ordering dialog.
type Step string

const (
	StepGreeting        Step = "greeting"
	StepMainMenu        Step = "main_menu"
	StepAwaitingProduct Step = "waiting_product"
	StepAwaitingQty     Step = "waiting_quantity"
	StepAwaitingName    Step = "waiting_name"
	StepAwaitingAddress Step = "waiting_address"
)

// OrderDraft accumulates the order fields collected so far within a session.
// Fields fill monotonically in step order; only a session reset clears them.
type OrderDraft struct {
	Product         *Product `json:"product"`
	Quantity        int      `json:"quantity"`
	CustomerName    string   `json:"customer_name"`
	DeliveryAddress string   `json:"delivery_address"`
}

// Session is the per-phone-number conversation state. The session store owns
// the lifetime; the dialog engine mutates it with exclusive access per turn.
type Session struct {
	PhoneNumber string     `json:"phone_number"`
	Step        Step       `json:"step"`
	Draft       OrderDraft `json:"draft"`
	CreatedAt   time.Time  `json:"created_at"`
	LastActive  time.Time  `json:"last_active"`
}

// NewSession returns a fresh session at the greeting step.
func NewSession(phone string) *Session {
	now := time.Now()
	return &Session{
		PhoneNumber: phone,
		Step:        StepGreeting,
		CreatedAt:   now,
		LastActive:  now,
	}
}

// Reset puts the session back at the greeting step with an empty draft.
// Called after a successful commit, or after a commit failure so no partial
// draft is left behind.
func (s *Session) Reset() {
	s.Step = StepGreeting
	s.Draft = OrderDraft{}
}
