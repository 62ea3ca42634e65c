package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	sessionID = uuid.NewString()
	sequence  uint64
)

// SessionID identifies the running drawing session. Strokes never outlive it.
func SessionID() string {
	return sessionID
}

func nextSequence() uint64 {
	return atomic.AddUint64(&sequence, 1)
}

// newStrokeID returns an id unique within the process, ordered by creation.
func newStrokeID() string {
	return fmt.Sprintf("stroke-%s-%d", sessionID[:8], nextSequence())
}
