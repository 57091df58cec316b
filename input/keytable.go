package input

import (
	"sync"
	"time"
)

// DefaultHold is how long a key stays down after a press when the event source
// never reports releases.
const DefaultHold = 150 * time.Millisecond

// KeyTable is key state shared between an event goroutine, which calls Press and
// Release, and the game loop, which reads it through IsKeyDown.
//
// Terminals only report key presses (repeating while a key is held), so every
// press keeps the key down for the hold window.
type KeyTable struct {
	mu   sync.Mutex
	hold time.Duration
	now  func() time.Time
	down map[Key]time.Time
}

func NewKeyTable(hold time.Duration) *KeyTable {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyTable{
		hold: hold,
		now:  time.Now,
		down: make(map[Key]time.Time),
	}
}

func (t *KeyTable) Press(k Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.down[k] = t.now().Add(t.hold)
}

func (t *KeyTable) Release(k Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.down, k)
}

// Reset releases every key.
func (t *KeyTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.down)
}

func (t *KeyTable) IsKeyDown(k Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	until, ok := t.down[k]
	if !ok {
		return false
	}
	if !t.now().Before(until) {
		delete(t.down, k)
		return false
	}
	return true
}
