// Package host runs arbor sessions on Ebitengine: it owns the window and the
// frame loop, reads pointer input, renders the game layer under the UI layer,
// and switches between sessions behind a loading screen.
package host

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/arbor"
	"go.uber.org/zap"
)

// maxFrameDelta caps the dt passed to Game.Update after a stall.
const maxFrameDelta = 0.25

var (
	loadingBackground = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	loadingBarTrack   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	loadingBarFill    = color.RGBA{0x4e, 0xcc, 0xa3, 0xff}
)

// Setup populates a freshly created session: systems, entities, and the UI
// root. Returning an error stops the host.
type Setup func(g *arbor.Game) error

// Host implements ebiten.Game around one arbor session at a time.
type Host struct {
	cfg RunConfig
	log *zap.Logger

	source    arbor.TouchSource
	script    *arbor.ScriptRunner
	gameLayer *ebiten.Image
	uiLayer   *ebiten.Image
	painter   *countingPainter
	stats     PaintStats

	game    *arbor.Game
	pending Setup
	shown   bool // loading screen drawn at least once for the pending switch

	last time.Time
	now  func() time.Time
}

// New creates a host. If cfg.Script is set, the script replaces real pointer
// input.
func New(cfg RunConfig, log *zap.Logger) (*Host, error) {
	cfg = cfg.withDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	h := &Host{
		cfg:       cfg,
		log:       log,
		gameLayer: ebiten.NewImage(cfg.Width, cfg.Height),
		uiLayer:   ebiten.NewImage(cfg.Width, cfg.Height),
		now:       time.Now,
	}
	h.painter = &countingPainter{inner: NewPainter(h.uiLayer)}

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return nil, fmt.Errorf("read touch script: %w", err)
		}
		runner, err := arbor.LoadTouchScript(data)
		if err != nil {
			return nil, err
		}
		h.script = runner
		h.source = runner
		log.Info("touch script loaded", zap.String("path", cfg.Script))
	} else {
		h.source = NewEbitenSource()
	}
	return h, nil
}

// Game returns the current session, or nil while none is running.
func (h *Host) Game() *arbor.Game { return h.game }

// Loading reports whether a session switch is pending.
func (h *Host) Loading() bool { return h.pending != nil }

// Script returns the touch script runner, or nil when real input is used.
func (h *Host) Script() *arbor.ScriptRunner { return h.script }

// SwitchGame schedules a switch to a new session. The loading screen is shown
// for at least one frame; then the current session is disposed and setup runs
// on the new one.
func (h *Host) SwitchGame(setup Setup) {
	h.pending = setup
	h.shown = false
}

func (h *Host) switchNow() error {
	setup := h.pending
	h.pending = nil

	if h.game != nil {
		h.game.Dispose()
		h.game = nil
	}
	if r, ok := h.source.(interface{ Reset() }); ok {
		r.Reset()
	}

	g := arbor.NewGame(arbor.Config{
		Logger: h.log,
		Screen: &arbor.ScreenInfo{
			GameSurface: h.gameLayer,
			UISurface:   h.uiLayer,
			Width:       float64(h.cfg.Width),
			Height:      float64(h.cfg.Height),
			Painter:     h.painter,
		},
	})
	arbor.Register[arbor.TouchData](g.Data()).Source = h.source

	if err := setup(g); err != nil {
		g.Dispose()
		return fmt.Errorf("setup game: %w", err)
	}
	h.game = g
	h.last = h.now()
	h.log.Info("game switched", zap.Int("entities", g.Entities().Len()), zap.Int("systems", len(g.Systems())))
	return nil
}

// Update implements ebiten.Game. It clears both layers and runs one session
// frame; systems draw into the layers during their Update.
func (h *Host) Update() error {
	if h.pending != nil {
		if !h.shown {
			return nil
		}
		if err := h.switchNow(); err != nil {
			return err
		}
	}
	if h.game == nil {
		return nil
	}

	now := h.now()
	dt := now.Sub(h.last).Seconds()
	h.last = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	h.gameLayer.Fill(h.cfg.ClearColor.RGBA())
	h.uiLayer.Clear()
	h.game.Update(dt)
	h.stats = h.painter.reset()
	return nil
}

// Draw implements ebiten.Game. The game layer is composited under the UI
// layer.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.pending != nil {
		h.drawLoading(screen)
		h.shown = true
		return
	}
	screen.DrawImage(h.gameLayer, nil)
	screen.DrawImage(h.uiLayer, nil)
	if h.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f  UI: %d nodes", ebiten.ActualFPS(), h.stats.Nodes))
	}
}

// Layout implements ebiten.Game.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.cfg.Width, h.cfg.Height
}

func (h *Host) drawLoading(screen *ebiten.Image) {
	w, ht := float32(h.cfg.Width), float32(h.cfg.Height)
	screen.Fill(loadingBackground)

	const msg = "Loading..."
	ebitenutil.DebugPrintAt(screen, msg, int(w/2)-len(msg)*glyphW/2, int(ht/2)-30)

	barW := w * 0.6
	barX := (w - barW) / 2
	barY := ht/2 + 10
	vector.DrawFilledRect(screen, barX, barY, barW, 8, loadingBarTrack, false)
	progress := float32(h.now().UnixMilli()%2000) / 2000
	vector.DrawFilledRect(screen, barX, barY, barW*progress, 8, loadingBarFill, false)
}

// Dispose tears down the current session.
func (h *Host) Dispose() {
	if h.game != nil {
		h.game.Dispose()
		h.game = nil
	}
	h.pending = nil
}

// Run opens the window and blocks until it closes. The first session is
// created from setup.
func (h *Host) Run(setup Setup) error {
	ebiten.SetWindowTitle(h.cfg.Title)
	ebiten.SetWindowSize(h.cfg.Width, h.cfg.Height)
	ebiten.SetTPS(h.cfg.TPS)
	h.SwitchGame(setup)
	defer h.Dispose()
	return ebiten.RunGame(h)
}

// GameLayer returns the game-layer image of a session created by a Host, or
// nil if the session has no ebiten surface.
func GameLayer(g *arbor.Game) *ebiten.Image {
	sd, ok := arbor.Lookup[arbor.ScreenData](g.Data())
	if !ok {
		return nil
	}
	img, _ := sd.GameSurface.(*ebiten.Image)
	return img
}
