// Package client runs one player's game over a terminal connection: it paces
// frames, feeds key presses to the game and renders the canvas plus HUD.
package client

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/keyrunner/internal/draw"
	"github.com/tomz197/keyrunner/internal/input"
	"github.com/tomz197/keyrunner/internal/loop"
	"github.com/tomz197/keyrunner/internal/loop/config"
	"github.com/tomz197/keyrunner/internal/loop/server"
)

// Client handles rendering and input for a single connection.
type Client struct {
	hub          server.Registry
	handle       *server.Handle
	game         *loop.Game
	hud          *HUD
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates HUD text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Seed         uint64             // Non-zero makes the game deterministic
	Renderer     *lipgloss.Renderer // Defaults to a 256-color renderer on w
	Logger       *log.Logger        // Defaults to discarding
}

// NewClient registers with the hub and creates a client on the title screen.
func NewClient(hub server.Registry, r *bufio.Reader, w io.Writer, opts ClientOptions) (*Client, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.StdoutSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.NewRenderer(w)
		renderer.SetColorProfile(termenv.ANSI256)
	}

	handle, err := hub.Register(opts.Username)
	if err != nil {
		return nil, fmt.Errorf("register session: %w", err)
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.SurfaceWidth, config.SurfaceHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	hud := NewHUD(renderer)
	gameOpts := loop.Options{Logger: logger.With("session", handle.ID.String())}
	if opts.Seed != 0 {
		gameOpts.Rand = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	}

	return &Client{
		hub:          hub,
		handle:       handle,
		game:         loop.New(canvas, hud, gameOpts),
		hud:          hud,
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
		logger:       logger,
	}, nil
}

// Game returns the game driven by this client.
func (c *Client) Game() *loop.Game {
	return c.game
}

// Run starts the client loop. Blocks until the client quits, the input ends
// or the server shuts down. The session is unregistered on return.
func (c *Client) Run() error {
	defer c.hub.Unregister(c.handle.ID)

	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		if err := c.step(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	c.logger.Info("session ended", "score", c.game.Score())
	return nil
}

// step runs one frame: input, hub events, resize, game tick and draw.
func (c *Client) step() error {
	c.processInput()
	c.processHubEvents()
	c.updateScreen()

	if c.state.ShuttingDown {
		c.updateShutdownState()
	} else {
		c.game.Tick()
	}

	if err := c.drawFrame(); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}

// processInput dispatches pending key presses to the game.
func (c *Client) processInput() {
	keys := input.ReadKeys(c.inputStream)
	if c.inputStream.Closed() {
		c.state.Running = false
	}

	if len(keys) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive session")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	for _, k := range keys {
		if k == input.KeyQuit {
			c.state.Running = false
			return
		}
		if !c.state.ShuttingDown {
			c.game.OnKeyDown(k)
		}
	}
}

// processHubEvents handles events from the hub.
func (c *Client) processHubEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Hub closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				if !c.state.ShuttingDown {
					c.state.ShuttingDown = true
					c.state.shutdownTimer = config.ShutdownDisplaySeconds
				}
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.chunkWriter)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}

// drawFrame renders the canvas diff, the border and the HUD.
func (c *Client) drawFrame() error {
	// On phase transitions, do a full terminal clear so UI elements from
	// the previous screen don't persist.
	gameState := c.game.State()
	if gameState != c.state.prevGameState ||
		c.state.isInactive != c.state.wasInactive ||
		c.state.ShuttingDown != c.state.wasShutdown {
		draw.ClearScreen(c.chunkWriter)
		c.canvas.ForceRedraw()
		c.state.prevGameState = gameState
		c.state.wasInactive = c.state.isInactive
		c.state.wasShutdown = c.state.ShuttingDown
	}

	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(gameState)

	return c.chunkWriter.Flush()
}

// drawUI draws the HUD for the current phase.
func (c *Client) drawUI(gameState loop.GameState) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.ShuttingDown {
		c.hud.drawShutdownScreen(c.chunkWriter, centerX, centerY, int(c.state.shutdownTimer)+1)
		return
	}

	if c.state.isInactive {
		left := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
		c.hud.drawInactivityScreen(c.chunkWriter, centerX, centerY, left)
		return
	}

	if gameState == loop.GameStateNotStarted {
		blinkOn := time.Now().UnixMilli()/600%2 == 0
		c.hud.drawStartScreen(c.chunkWriter, centerX, centerY, blinkOn)
		return
	}
	c.hud.drawPlayingHUD(c.chunkWriter, termWidth, termHeight, c.hub.Count())
}
