package client

import (
	"time"

	"github.com/tomz197/keyrunner/internal/loop"
)

// ClientState holds per-connection state around the game itself.
type ClientState struct {
	Running       bool          // Client loop running
	ShuttingDown  bool          // Hub announced shutdown
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state

	// Last drawn phase; a change forces a full terminal clear.
	prevGameState loop.GameState
	wasInactive   bool
	wasShutdown   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running:       true,
		prevGameState: loop.GameStateNotStarted,
	}
}
