package loop

import (
	"github.com/tomz197/keyrunner/internal/loop/config"
	"github.com/tomz197/keyrunner/internal/object"
	"github.com/tomz197/keyrunner/internal/physics"
)

// hitsPlayer tests c against the player's box shrunk by the collision inset.
func hitsPlayer(p *object.Player, c object.Collider) bool {
	return physics.InsetOverlap(c.Box(), p.Box(), config.CollisionInset)
}
