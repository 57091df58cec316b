package render

import (
	"errors"
	"reflect"
	"testing"
)

func TestLayersOrder(t *testing.T) {
	var (
		l     Layers
		order []string
	)
	add := func(name string, priority int) LayerID {
		return l.Add(DrawFunc(func(*Buffer) error {
			order = append(order, name)
			return nil
		}), priority)
	}

	add("hud", 10)
	add("view", 0)
	add("map", 5)
	add("crosshair", 10)
	bg := add("background", -1)

	if err := l.Draw(NewBuffer(1, 1)); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	want := []string{"background", "view", "map", "hud", "crosshair"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}

	if !l.Remove(bg) {
		t.Error("Remove should find the background layer")
	}
	if l.Remove(bg) {
		t.Error("second Remove should report false")
	}
	if l.Len() != 4 {
		t.Errorf("Len = %d, want 4", l.Len())
	}

	order = nil
	_ = l.Draw(NewBuffer(1, 1))
	if !reflect.DeepEqual(order, want[1:]) {
		t.Errorf("order after remove = %v", order)
	}
}

func TestLayersIDsAreOwned(t *testing.T) {
	var a, b Layers
	noop := DrawFunc(func(*Buffer) error { return nil })
	if a.Add(noop, 0) != b.Add(noop, 0) {
		t.Error("each container should number its own layers")
	}
	if a.Add(noop, 0) == a.Add(noop, 0) {
		t.Error("IDs within a container should differ")
	}
}

func TestLayersStopOnError(t *testing.T) {
	var l Layers
	boom := errors.New("boom")
	ran := false
	l.Add(DrawFunc(func(*Buffer) error { return boom }), 0)
	l.Add(DrawFunc(func(*Buffer) error { ran = true; return nil }), 1)

	if err := l.Draw(NewBuffer(1, 1)); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
	if ran {
		t.Error("layers after a failure should not draw")
	}
}
