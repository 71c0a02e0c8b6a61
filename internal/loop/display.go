package loop

// Element names a HUD element driven by the game.
type Element int

const (
	ElementScore       Element = iota // "Score: N"
	ElementLives                      // "Lives: N"
	ElementStartPrompt                // Title screen prompt
	ElementGameOver                   // Game-over panel
)

func (e Element) String() string {
	switch e {
	case ElementScore:
		return "score"
	case ElementLives:
		return "lives"
	case ElementStartPrompt:
		return "start-prompt"
	case ElementGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Display receives HUD updates from the game. Implementations render them
// outside the logical surface.
type Display interface {
	SetText(e Element, text string)
	SetVisible(e Element, visible bool)
}

type nopDisplay struct{}

func (nopDisplay) SetText(Element, string)  {}
func (nopDisplay) SetVisible(Element, bool) {}
