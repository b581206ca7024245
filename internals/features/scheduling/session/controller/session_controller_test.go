// file: internals/features/scheduling/session/controller/session_controller_test.go
package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "migym_backend/internals/features/scheduling/session/model"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to m.SessionStatus }{
		{m.SessionScheduled, m.SessionInProgress},
		{m.SessionScheduled, m.SessionCancelled},
		{m.SessionScheduled, m.SessionSuspended},
		{m.SessionInProgress, m.SessionCompleted},
		{m.SessionSuspended, m.SessionScheduled},
		{m.SessionSuspended, m.SessionCancelled},
	}
	for _, tt := range allowed {
		assert.True(t, canTransition(tt.from, tt.to), "%s -> %s debería permitirse", tt.from, tt.to)
	}

	denied := []struct{ from, to m.SessionStatus }{
		{m.SessionScheduled, m.SessionCompleted},
		{m.SessionInProgress, m.SessionCancelled},
		{m.SessionCompleted, m.SessionScheduled},
		{m.SessionCancelled, m.SessionScheduled},
		{m.SessionCancelled, m.SessionInProgress},
		{m.SessionScheduled, m.SessionScheduled},
	}
	for _, tt := range denied {
		assert.False(t, canTransition(tt.from, tt.to), "%s -> %s debería rechazarse", tt.from, tt.to)
	}
}
