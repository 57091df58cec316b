// Package term presents frames in a terminal with tcell and feeds terminal key
// events into a key table.
package term

import (
	"fmt"
	"image/color"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"gadzooks/input"
	"gadzooks/render"
)

// halfBlock shows two buffer rows in one cell: the foreground paints the upper
// half and the background the lower half.
const halfBlock = '▀'

type Screen struct {
	screen tcell.Screen
	keys   *input.KeyTable

	mu         sync.Mutex
	cols, rows int

	started bool
	done    chan struct{}
}

// Open initialises the terminal. Close must be called to restore it.
func Open(keys *input.KeyTable) (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	scr.EnableFocus()
	return New(scr, keys), nil
}

// New wraps an initialised tcell screen.
func New(scr tcell.Screen, keys *input.KeyTable) *Screen {
	scr.HideCursor()
	scr.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	scr.Clear()

	s := &Screen{screen: scr, keys: keys, done: make(chan struct{})}
	s.cols, s.rows = scr.Size()
	return s
}

// Start runs the event pump until the screen is closed.
func (s *Screen) Start() {
	s.started = true
	go s.pump()
}

func (s *Screen) pump() {
	defer close(s.done)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// PollEvent returns nil once the screen is finalised
			return
		}
		s.handle(ev)
	}
}

func (s *Screen) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k, ok := keyFor(ev); ok {
			s.keys.Press(k)
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.mu.Lock()
		s.cols, s.rows = cols, rows
		s.mu.Unlock()
		s.screen.Sync()
		log.WithFields(log.Fields{"cols": cols, "rows": rows}).Debug("terminal resized")
	case *tcell.EventFocus:
		// keys held when the window lost focus would otherwise stay down
		// until their hold expires
		if !ev.Focused {
			s.keys.Reset()
		}
	}
}

// Close restores the terminal and waits for the event pump to stop.
func (s *Screen) Close() {
	s.screen.Fini()
	if s.started {
		<-s.done
	}
}

func (s *Screen) Size() (cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cols, s.rows
}

// Present scales buf to the terminal, two buffer rows per cell row, nearest
// sample.
func (s *Screen) Present(buf *render.Buffer) error {
	cols, rows := s.Size()
	b := buf.Bounds()
	if cols <= 0 || rows <= 0 || b.Empty() {
		return nil
	}

	for cy := 0; cy < rows; cy++ {
		ty := b.Min.Y + (2*cy)*b.Dy()/(2*rows)
		by := b.Min.Y + (2*cy+1)*b.Dy()/(2*rows)
		for cx := 0; cx < cols; cx++ {
			sx := b.Min.X + cx*b.Dx()/cols
			style := tcell.StyleDefault.
				Foreground(rgb(buf.RGBAAt(sx, ty))).
				Background(rgb(buf.RGBAAt(sx, by)))
			s.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// keyFor maps terminal keys to game actions: arrows or WASD move, P pauses,
// Tab or M toggles the map, R respawns, Escape, Q or Ctrl-C quit.
func keyFor(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit, true
	case tcell.KeyLeft:
		return input.TurnLeft, true
	case tcell.KeyRight:
		return input.TurnRight, true
	case tcell.KeyUp:
		return input.Forward, true
	case tcell.KeyDown:
		return input.Backward, true
	case tcell.KeyTab:
		return input.ToggleMap, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'a':
			return input.TurnLeft, true
		case 'd':
			return input.TurnRight, true
		case 'w':
			return input.Forward, true
		case 's':
			return input.Backward, true
		case 'p':
			return input.Pause, true
		case 'm':
			return input.ToggleMap, true
		case 'r':
			return input.Respawn, true
		case 'q':
			return input.Quit, true
		}
	}
	return 0, false
}
