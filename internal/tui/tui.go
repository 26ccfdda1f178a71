// Package tui drives the blob in a terminal: mouse input becomes pointer
// events, a ticker becomes frames, and each frame is drawn with tcell.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/Kuadribal/touchblob/internal/app"
	"github.com/Kuadribal/touchblob/internal/art"
	"github.com/Kuadribal/touchblob/internal/body"
	"github.com/Kuadribal/touchblob/internal/conditions"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// One terminal cell covers this many canvas pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

const FrameInterval = 16 * time.Millisecond

// Captions climb one row per step.
const floatRise = 200 * time.Millisecond

const (
	squashLimit  = 0.85
	stretchLimit = 1.15
	leanCells    = 4.0
)

var (
	groundStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	floatStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
)

type Driver struct {
	screen  tcell.Screen
	app     *app.App
	floats  *Floats
	log     *slog.Logger
	onColor func(string) error

	clock   func() time.Duration
	pressed bool
}

// NewDriver wraps an initialised screen. The caller owns the screen and
// calls Fini after Run returns.
func NewDriver(screen tcell.Screen, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	d := &Driver{
		screen: screen,
		log:    logger,
		clock:  func() time.Duration { return time.Since(start) },
	}
	d.floats = NewFloats(d.now)
	return d
}

func (d *Driver) now() time.Duration { return d.clock() }

// Effects is the caption sink to hand to the body.
func (d *Driver) Effects() body.Effects { return d.floats }

// CanvasSize is the drawable area in canvas pixels. The bottom row is
// kept for the status line.
func (d *Driver) CanvasSize() (width, height float64) {
	cols, rows := d.screen.Size()
	rows--
	if rows < 1 {
		rows = 1
	}
	return float64(cols * CellWidth), float64(rows * CellHeight)
}

// Attach sets the app to drive. onColor, if set, persists a palette
// change.
func (d *Driver) Attach(a *app.App, onColor func(string) error) {
	d.app = a
	d.onColor = onColor
	a.Resize(d.CanvasSize())
}

// Run loops until ctx is done or the user quits.
func (d *Driver) Run(ctx context.Context) error {
	if d.app == nil {
		return errors.New("tui: no app attached")
	}

	d.screen.EnableMouse()
	d.screen.EnableFocus()
	defer d.screen.DisableMouse()
	defer d.screen.DisableFocus()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !d.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			d.Tick()
		}
	}
}

// Tick advances one frame and redraws.
func (d *Driver) Tick() {
	at := d.now()
	d.app.Frame(at)
	d.Draw(at)
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	if d.app == nil {
		return true
	}

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'c', 'C':
				d.cycleColor()
			}
		}
	case *tcell.EventMouse:
		d.handleMouse(ev)
	case *tcell.EventResize:
		d.leave()
		d.screen.Sync()
		d.app.Resize(d.CanvasSize())
	case *tcell.EventFocus:
		if !ev.Focused {
			d.leave()
		}
	}
	return true
}

func (d *Driver) handleMouse(ev *tcell.EventMouse) {
	x, y := cellCenter(ev.Position())
	at := d.now()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !d.pressed:
		d.pressed = true
		d.app.PointerDown(x, y, at)
	case down:
		d.app.PointerMove(x, y, at)
	case d.pressed:
		d.pressed = false
		d.app.PointerUp(x, y, at)
	}
}

// leave abandons a press the terminal can no longer track.
func (d *Driver) leave() {
	if !d.pressed {
		return
	}
	d.pressed = false
	d.app.PointerLeave(d.now())
}

func (d *Driver) cycleColor() {
	next := art.NextPaletteColor(d.app.Color())
	d.app.SetColor(next)
	d.log.Info("color changed", "color", next)

	if d.onColor == nil {
		return
	}
	if err := d.onColor(next); err != nil {
		d.log.Warn("failed to save color", "err", err)
	}
}

func cellCenter(col, row int) (x, y float64) {
	return float64(col*CellWidth + CellWidth/2), float64(row*CellHeight + CellHeight/2)
}

// Draw renders the current view.
func (d *Driver) Draw(at time.Duration) {
	v := d.app.Render()
	cols, rows := d.screen.Size()

	d.screen.Clear()

	groundRow := int(d.app.Body().GroundY() / CellHeight)
	for x := 0; x < cols; x++ {
		d.screen.SetContent(x, groundRow, '─', nil, groundStyle)
	}

	d.drawBlob(v)

	for _, f := range d.floats.Live(at) {
		row := int(f.Y/CellHeight) - 2 - int((at-f.Born)/floatRise)
		col := int(f.X/CellWidth) - runewidth.StringWidth(f.Text)/2
		d.drawText(col, row, f.Text, floatStyle)
	}

	d.drawStatus(v, cols, rows-1)
	d.screen.Show()
}

func (d *Driver) drawBlob(v app.View) {
	lines := strings.Split(blobArt(v), "\n")
	switch mid := len(lines) / 2; {
	case v.ScaleY < squashLimit && len(lines) >= 3:
		lines = append(lines[:mid:mid], lines[mid+1:]...)
	case v.ScaleY > stretchLimit && len(lines) >= 3:
		lines = append(lines[:mid+1:mid+1], lines[mid:]...)
	}

	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}

	c := art.FillColor(v.Color, v.Stats.Mood)
	r, g, b := c.RGB255()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))

	center := int(v.X/CellWidth) + int(math.Round(v.Rotation*leanCells))
	bottom := int(v.Y/CellHeight) - 1
	top := bottom - len(lines) + 1
	for i, l := range lines {
		d.drawText(center-width/2, top+i, l, style)
	}
}

func blobArt(v app.View) string {
	if v.HasFrame && v.Frame.Art != "" {
		return v.Frame.Art
	}
	return art.Face(v.Stats)
}

func (d *Driver) drawStatus(v app.View, cols, row int) {
	for x := 0; x < cols; x++ {
		d.screen.SetContent(x, row, ' ', nil, statusStyle)
	}

	doing := string(v.Action)
	if v.IdleMood != "" {
		doing = v.IdleMood
	}
	left := fmt.Sprintf(" %s %s  mood %.0f  energy %.0f  hunger %.0f  %s",
		conditions.MoodEmoji(v.Stats.Mood), v.Name, v.Stats.Mood, v.Stats.Energy, v.Stats.Hunger, doing)
	d.drawText(0, row, left, statusStyle)

	const help = "c color  q quit "
	d.drawText(cols-runewidth.StringWidth(help), row, help, statusStyle)
}

// drawText writes s from (x, y), clipping at the screen edges.
func (d *Driver) drawText(x, y int, s string, style tcell.Style) {
	cols, rows := d.screen.Size()
	if y < 0 || y >= rows {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= cols {
			d.screen.SetContent(x, y, r, nil, style)
		}
		x += w
	}
}
