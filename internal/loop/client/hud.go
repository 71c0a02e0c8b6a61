package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/keyrunner/internal/draw"
	"github.com/tomz197/keyrunner/internal/loop"
)

// styles are the lipgloss styles of one session's renderer.
type styles struct {
	title  lipgloss.Style
	accent lipgloss.Style
	text   lipgloss.Style
	dim    lipgloss.Style
	warn   lipgloss.Style
	panel  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		accent: r.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		text:   r.NewStyle().Foreground(lipgloss.Color("252")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("244")),
		warn:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 2),
	}
}

// HUD implements loop.Display by keeping the latest texts and drawing them
// around the canvas each frame.
type HUD struct {
	texts   map[loop.Element]string
	visible map[loop.Element]bool
	styles  styles
}

var _ loop.Display = (*HUD)(nil)

// NewHUD creates a HUD styled for r.
func NewHUD(r *lipgloss.Renderer) *HUD {
	return &HUD{
		texts:   make(map[loop.Element]string),
		visible: make(map[loop.Element]bool),
		styles:  newStyles(r),
	}
}

// SetText implements loop.Display.
func (h *HUD) SetText(e loop.Element, text string) {
	h.texts[e] = text
}

// SetVisible implements loop.Display.
func (h *HUD) SetVisible(e loop.Element, visible bool) {
	h.visible[e] = visible
}

// Text returns the last text set for e.
func (h *HUD) Text(e loop.Element) string {
	return h.texts[e]
}

// Visible reports whether e is shown.
func (h *HUD) Visible(e loop.Element) bool {
	return h.visible[e]
}

// writeCentered writes each line of s centered on column centerX, starting at row.
func writeCentered(cw *draw.ChunkWriter, centerX, row int, s string) {
	for i, line := range strings.Split(s, "\n") {
		cw.WriteAt(centerX-lipgloss.Width(line)/2, row+i, line)
	}
}

var titleArt = []string{
	`  _  _________   __  ___ _   _ _  _ _  _ ___ ___  `,
	` | |/ / __\ \ / / | _ \ | | | \| | \| | __| _ \ `,
	` | ' <| _| \ V /  |   / |_| | .  | .  | _||   / `,
	` |_|\_\___| |_|   |_|_\\___/|_|\_|_|\_|___|_|_\ `,
}

// drawStartScreen draws the title screen.
func (h *HUD) drawStartScreen(cw *draw.ChunkWriter, centerX, centerY int, blinkOn bool) {
	s := h.styles
	titleStartY := centerY - 7
	writeCentered(cw, centerX, titleStartY, s.title.Render(strings.Join(titleArt, "\n")))

	subtitle := s.dim.Render("~ Jump, dodge and type your way past the enemies ~")
	writeCentered(cw, centerX, titleStartY+len(titleArt)+1, subtitle)

	controlsY := titleStartY + len(titleArt) + 3
	writeCentered(cw, centerX, controlsY, s.accent.Render("Controls"))
	controlLines := []string{
		"SPACE  . . . . . . Jump",
		"W A S D  . . Enemy keys",
		"Q  . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		writeCentered(cw, centerX, controlsY+1+i, s.text.Render(line))
	}

	if blinkOn && h.visible[loop.ElementStartPrompt] {
		prompt := s.title.Render(">>  Press SPACE to Start  <<")
		writeCentered(cw, centerX, controlsY+len(controlLines)+2, prompt)
	}
}

// drawPlayingHUD draws score, lives and players online. Text fields use
// fixed-width formatting so shrinking values leave no residual characters.
func (h *HUD) drawPlayingHUD(cw *draw.ChunkWriter, termWidth, termHeight, players int) {
	s := h.styles
	cw.WriteAt(2, 1, s.accent.Render(fmt.Sprintf("%-16s", h.texts[loop.ElementScore])))

	lives := fmt.Sprintf("%10s", h.texts[loop.ElementLives])
	cw.WriteAt(termWidth-len(lives)-1, 1, s.warn.Render(lives))

	online := fmt.Sprintf("Players: %-4d", players)
	cw.WriteAt(termWidth-len(online)-1, termHeight, s.dim.Render(online))

	if h.visible[loop.ElementGameOver] {
		panel := s.panel.Render(s.warn.Render(h.texts[loop.ElementGameOver]))
		writeCentered(cw, termWidth/2, termHeight-5, panel)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (h *HUD) drawInactivityScreen(cw *draw.ChunkWriter, centerX, centerY, secondsLeft int) {
	s := h.styles
	writeCentered(cw, centerX, centerY-2, s.warn.Render("INACTIVITY WARNING"))

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		secondsLeft,
	)
	writeCentered(cw, centerX, centerY, s.text.Render(msg))
	writeCentered(cw, centerX, centerY+2, s.dim.Render("Press any key to continue"))
}

// drawShutdownScreen draws the server shutdown notification screen.
func (h *HUD) drawShutdownScreen(cw *draw.ChunkWriter, centerX, centerY, secondsLeft int) {
	s := h.styles
	writeCentered(cw, centerX, centerY-3, s.warn.Render("SERVER SHUTTING DOWN"))
	writeCentered(cw, centerX, centerY-1, s.text.Render("The server is restarting for maintenance."))
	writeCentered(cw, centerX, centerY, s.text.Render("Please reconnect in a moment."))
	writeCentered(cw, centerX, centerY+2, s.accent.Render(fmt.Sprintf("Disconnecting in %d seconds...", secondsLeft)))
	writeCentered(cw, centerX, centerY+4, s.dim.Render("Press Q to disconnect now"))
}
