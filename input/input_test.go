package input

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestTable(hold time.Duration) (*KeyTable, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	kt := NewKeyTable(hold)
	kt.now = clock.now
	return kt, clock
}

func TestKeyTableHold(t *testing.T) {
	kt, clock := newTestTable(100 * time.Millisecond)

	if kt.IsKeyDown(Forward) {
		t.Fatal("key down before any press")
	}
	kt.Press(Forward)

	cases := []struct {
		after time.Duration
		want  bool
	}{
		{0, true},
		{50 * time.Millisecond, true},
		{49 * time.Millisecond, true},
		{1 * time.Millisecond, false},
	}
	for i, c := range cases {
		clock.advance(c.after)
		if got := kt.IsKeyDown(Forward); got != c.want {
			t.Errorf("step %d: IsKeyDown = %v, want %v", i, got, c.want)
		}
	}
}

func TestKeyTableRepeatExtends(t *testing.T) {
	kt, clock := newTestTable(100 * time.Millisecond)
	kt.Press(TurnLeft)
	clock.advance(80 * time.Millisecond)
	kt.Press(TurnLeft)
	clock.advance(80 * time.Millisecond)
	if !kt.IsKeyDown(TurnLeft) {
		t.Error("repeated press should extend the hold window")
	}
}

func TestKeyTableRelease(t *testing.T) {
	kt, _ := newTestTable(time.Second)
	kt.Press(Quit)
	kt.Press(Pause)
	kt.Release(Quit)
	if kt.IsKeyDown(Quit) {
		t.Error("released key still down")
	}
	if !kt.IsKeyDown(Pause) {
		t.Error("other keys should stay down")
	}
	kt.Reset()
	if kt.IsKeyDown(Pause) {
		t.Error("Reset should release every key")
	}
}

func TestKeyTableDefaultHold(t *testing.T) {
	if kt := NewKeyTable(0); kt.hold != DefaultHold {
		t.Errorf("hold = %v, want %v", kt.hold, DefaultHold)
	}
}

func TestKeyTableConcurrent(t *testing.T) {
	kt := NewKeyTable(time.Second)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(k Key) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				kt.Press(k)
				kt.IsKeyDown(k)
				kt.Release(k)
			}
		}(Key(i % int(keyCount)))
	}
	wg.Wait()
}

func TestEdges(t *testing.T) {
	var e Edges
	frames := []struct {
		held Held
		want bool
	}{
		{Held{}, false},
		{Held{Pause: true}, true},
		{Held{Pause: true}, false},
		{Held{}, false},
		{Held{Pause: true}, true},
	}
	for i, f := range frames {
		if got := e.Pressed(f.held, Pause); got != f.want {
			t.Errorf("frame %d: Pressed = %v, want %v", i, got, f.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	if got := ToggleMap.String(); got != "toggle-map" {
		t.Errorf("String = %q", got)
	}
	if got := Key(99).String(); got != "Key(99)" {
		t.Errorf("String = %q", got)
	}
	for k := Key(0); k < keyCount; k++ {
		if keyNames[k] == "" {
			t.Errorf("%d has no name", int(k))
		}
	}
}
