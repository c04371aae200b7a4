// Package eventlock guards against duplicate concurrent exposure on one
// market. Locks are held only for the duration of pick creation, then
// released; the TTL is a safety net for a holder that crashes mid-flight.
package eventlock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const DefaultTTL = 5 * time.Second

var ErrAlreadyLocked = errors.New("event already locked")

// Locker is the exclusivity guard for (challenge, market) pairs.
type Locker interface {
	Acquire(ctx context.Context, challengeID int, marketKey string) (release func(), err error)
}

func lockKey(challengeID int, marketKey string) string {
	return fmt.Sprintf("eventlock:%d:%s", challengeID, marketKey)
}
