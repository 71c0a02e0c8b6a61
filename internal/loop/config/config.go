// Package config centralizes all tunable game parameters.
package config

import "time"

// Surface - the fixed logical drawing area in game units.
// Actual rendering scales to fit terminal size.
const (
	SurfaceWidth  = 1200
	SurfaceHeight = 700
	GroundY       = 600 // Top edge of ground-level entities
)

// Max render resolution in terminal cells. Larger terminals get a border
// around a centered render area.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 70
)

// Player
const (
	PlayerX      = 50
	InitialLives = 3
)

// Spawning, in ticks
const (
	ObstacleCooldown = 180
	EnemyCooldown    = 400
)

// Movement, in units per tick
const (
	ObstacleSpeed = 4
	EnemySpeed    = 3
)

// Enemies and the key challenge
const (
	EnemyVariants     = 2
	EnemyDeathTTL     = 30 // Ticks the death sprite stays (about 0.5s)
	SequenceMinLength = 3
	SequenceMaxLength = 5
)

// Challenge overlay panel, centered on the surface.
const (
	OverlayWidth  = 300
	OverlayHeight = 100
)

// Death burst
const (
	BurstParticles = 12
	BurstSpeed     = 4.0
	BurstLifetime  = 24 // Ticks
)

// Collision and scoring
const (
	CollisionInset = 10
	ScorePerTick   = 1
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)
