package loop

import "github.com/tomz197/keyrunner/internal/loop/config"

// SpawnTimer counts ticks toward the next obstacle and enemy.
type SpawnTimer struct {
	Obstacle int
	Enemy    int
	Disabled bool // Cooldowns still count but nothing spawns
}

// Reset zeroes both cooldowns and re-enables spawning.
func (t *SpawnTimer) Reset() {
	*t = SpawnTimer{}
}

// Advance counts one tick and reports which entities are due. A due
// cooldown restarts from zero.
func (t *SpawnTimer) Advance() (obstacle, enemy bool) {
	t.Obstacle++
	t.Enemy++
	if t.Disabled {
		return false, false
	}
	if t.Obstacle >= config.ObstacleCooldown {
		t.Obstacle = 0
		obstacle = true
	}
	if t.Enemy >= config.EnemyCooldown {
		t.Enemy = 0
		enemy = true
	}
	return obstacle, enemy
}
