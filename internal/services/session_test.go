package services_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungdigital/warung-backend/internal/models"
	"github.com/warungdigital/warung-backend/internal/services"
)

func TestSessionCreatedLazily(t *testing.T) {
	sessions := services.NewSessionStore()

	assert.Nil(t, sessions.Peek("628111"))
	assert.Zero(t, sessions.Count())

	err := sessions.Do("628111", func(session *models.Session) error {
		assert.Equal(t, models.StepGreeting, session.Step)
		assert.Equal(t, "628111", session.PhoneNumber)
		return nil
	})
	require.NoError(t, err)

	assert.NotNil(t, sessions.Peek("628111"))
	assert.Equal(t, 1, sessions.Count())
}

func TestSessionMutationsAreRetained(t *testing.T) {
	sessions := services.NewSessionStore()

	err := sessions.Do("628111", func(session *models.Session) error {
		session.Step = models.StepAwaitingQty
		session.Draft.Quantity = 4
		return nil
	})
	require.NoError(t, err)

	session := sessions.Peek("628111")
	assert.Equal(t, models.StepAwaitingQty, session.Step)
	assert.Equal(t, 4, session.Draft.Quantity)
}

func TestPeekReturnsACopy(t *testing.T) {
	sessions := services.NewSessionStore()
	_ = sessions.Do("628111", func(session *models.Session) error { return nil })

	peeked := sessions.Peek("628111")
	peeked.Step = models.StepAwaitingAddress

	assert.Equal(t, models.StepGreeting, sessions.Peek("628111").Step)
}

func TestReset(t *testing.T) {
	sessions := services.NewSessionStore()
	_ = sessions.Do("628111", func(session *models.Session) error {
		session.Step = models.StepAwaitingName
		session.Draft.Quantity = 2
		return nil
	})

	sessions.Reset("628111")

	session := sessions.Peek("628111")
	assert.Equal(t, models.StepGreeting, session.Step)
	assert.Equal(t, models.OrderDraft{}, session.Draft)
}

// Turns for the same phone must serialize: concurrent increments through Do
// must never be lost.
func TestDoSerializesPerPhone(t *testing.T) {
	sessions := services.NewSessionStore()

	const turns = 200
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sessions.Do("628111", func(session *models.Session) error {
				session.Draft.Quantity++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, turns, sessions.Peek("628111").Draft.Quantity)
}
