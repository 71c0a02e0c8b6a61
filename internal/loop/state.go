package loop

import (
	"github.com/tomz197/keyrunner/internal/loop/config"
	"github.com/tomz197/keyrunner/internal/object"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateNotStarted GameState = iota // Title screen
	GameStateRunning                     // Ticks advance the world
	GameStateGameOver                    // Frozen until restart
)

func (s GameState) String() string {
	switch s {
	case GameStateNotStarted:
		return "not-started"
	case GameStateRunning:
		return "running"
	case GameStateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// State holds everything a game mutates between ticks.
type State struct {
	GameState GameState
	Score     int
	Lives     int

	Player    *object.Player
	Obstacles []*object.Obstacle
	Enemies   []*object.Enemy
	Particles []object.Object
	toSpawn   []object.Object // Objects to add after current update cycle

	Challenge object.Challenge
	Spawns    SpawnTimer
}

// NewState creates a state with a grounded player on the title screen.
func NewState() *State {
	return &State{
		GameState: GameStateNotStarted,
		Lives:     config.InitialLives,
		Player:    object.NewPlayer(config.PlayerX, config.GroundY),
	}
}

// Reset prepares the state for a fresh run.
func (s *State) Reset() {
	s.Score = 0
	s.Lives = config.InitialLives
	s.Player.Reset()
	s.Obstacles = s.Obstacles[:0]
	s.Enemies = s.Enemies[:0]
	for _, p := range s.Particles {
		object.ReleaseObject(p)
	}
	s.Particles = s.Particles[:0]
	for _, obj := range s.toSpawn {
		object.ReleaseObject(obj)
	}
	s.toSpawn = s.toSpawn[:0]
	s.Challenge.Deactivate()
	s.Spawns.Reset()
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner interface.
func (s *State) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued objects and clears the queue.
func (s *State) FlushSpawned() {
	s.Particles = append(s.Particles, s.toSpawn...)
	s.toSpawn = s.toSpawn[:0]
}

// AliveEnemies returns how many enemies are alive.
func (s *State) AliveEnemies() int {
	n := 0
	for _, e := range s.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}
