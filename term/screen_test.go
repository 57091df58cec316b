package term

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"gadzooks/input"
	"gadzooks/render"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	ss.SetSize(cols, rows)
	return ss
}

func TestKeyFor(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want input.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.Quit, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.TurnLeft, true},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.Forward, true},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), input.ToggleMap, true},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), input.Forward, true},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), input.Pause, true},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), input.Respawn, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
	}
	for _, c := range cases {
		got, ok := keyFor(c.ev)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("keyFor(%v) = (%v, %v), want (%v, %v)", c.ev.Name(), got, ok, c.want, c.ok)
		}
	}
}

func TestHandleFeedsKeyTable(t *testing.T) {
	keys := input.NewKeyTable(time.Minute)
	s := New(newSimScreen(t, 10, 5), keys)
	defer s.Close()

	s.handle(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	if !keys.IsKeyDown(input.TurnRight) {
		t.Error("key event did not reach the key table")
	}

	s.handle(tcell.NewEventResize(30, 12))
	if cols, rows := s.Size(); cols != 30 || rows != 12 {
		t.Errorf("size = %dx%d, want 30x12", cols, rows)
	}
}

func TestFocusLossReleasesKeys(t *testing.T) {
	keys := input.NewKeyTable(time.Minute)
	s := New(newSimScreen(t, 10, 5), keys)
	defer s.Close()

	s.handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	s.handle(tcell.NewEventFocus(true))
	if !keys.IsKeyDown(input.Forward) {
		t.Fatal("gaining focus should keep held keys")
	}
	s.handle(tcell.NewEventFocus(false))
	if keys.IsKeyDown(input.Forward) {
		t.Error("losing focus should release held keys")
	}
}

func TestPresentPacksTwoRowsPerCell(t *testing.T) {
	sim := newSimScreen(t, 2, 1)
	s := New(sim, input.NewKeyTable(0))
	defer s.Close()

	top := color.RGBA{255, 0, 0, 255}
	bottom := color.RGBA{0, 0, 255, 255}
	buf := render.NewBuffer(4, 2)
	buf.Fill(image.Rect(0, 0, 4, 1), top)
	buf.Fill(image.Rect(0, 1, 4, 2), bottom)

	if err := s.Present(buf); err != nil {
		t.Fatalf("Present: %v", err)
	}
	for x := 0; x < 2; x++ {
		r, _, style, _ := sim.GetContent(x, 0)
		if r != halfBlock {
			t.Errorf("cell %d rune = %q", x, r)
		}
		fg, bg, _ := style.Decompose()
		if fg != rgb(top) || bg != rgb(bottom) {
			t.Errorf("cell %d colours = %v/%v", x, fg, bg)
		}
	}
}
