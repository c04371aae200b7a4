// Package notify signals challenge and payout transitions to the external
// notification component. Delivery is best-effort: a publish failure is
// logged and never rolls back the ledger transition that caused it.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
)

// Event types emitted on transitions.
const (
	EventPhaseAdvanced   = "phase_advanced"
	EventChallengeFailed = "challenge_failed"
	EventChallengeFunded = "challenge_funded"
	EventPayoutRequested = "payout_requested"
	EventRolloverApplied = "rollover_applied"
)

// TransitionEvent is the wire payload consumed by the notification service.
type TransitionEvent struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	ChallengeID int                    `json:"challenge_id"`
	UserID      int                    `json:"user_id"`
	Phase       domain.Phase           `json:"phase,omitempty"`
	Status      domain.ChallengeStatus `json:"status,omitempty"`
	Amount      int64                  `json:"amount,omitempty"`
	OccurredAt  time.Time              `json:"occurred_at"`
}

type Notifier interface {
	Publish(evt TransitionEvent)
	Close()
}

// NATS publishes transition events to challenge.events.{type}.
type NATS struct {
	conn *nats.Conn
}

func NewNATS(url string) (*NATS, error) {
	conn, err := nats.Connect(url, nats.Name("playfunded-engine"))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &NATS{conn: conn}, nil
}

func (n *NATS) Publish(evt TransitionEvent) {
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		zap.L().Error("failed to marshal transition event", zap.Error(err))
		return
	}
	subject := "challenge.events." + evt.Type
	if err := n.conn.Publish(subject, data); err != nil {
		zap.L().Warn("failed to publish transition event",
			zap.String("subject", subject),
			zap.Int("challengeID", evt.ChallengeID),
			zap.Error(err))
	}
}

func (n *NATS) Close() {
	n.conn.Drain()
}

// Noop is used when no NATS URL is configured and in tests.
type Noop struct{}

func (Noop) Publish(TransitionEvent) {}

func (Noop) Close() {}
