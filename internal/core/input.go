package core

// Key identifies a key the game reacts to, abstracted from physical key codes.
type Key int

const (
	KeyLeft   Key = iota // A, Left arrow - move paddle left
	KeyRight             // D, Right arrow - move paddle right
	KeyUp                // W, Up arrow - next level in menu
	KeyDown              // S, Down arrow - previous level in menu
	KeyEnter             // Enter - start / leave win screen
	KeySpace             // Space - release a stuck ball
	KeyCount             // Sentinel for table sizing
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	default:
		return "Unknown"
	}
}

// KeyTable is the boolean key-state table written by an input-polling
// collaborator and read by the game each frame. Processed is the parallel
// table used for edge-triggered actions: it stays set while the key is held
// and is cleared on release.
type KeyTable struct {
	Down      [KeyCount]bool
	Processed [KeyCount]bool
}

// Set records a press or release. Releasing a key clears its processed flag.
func (t *KeyTable) Set(k Key, down bool) {
	if k < 0 || k >= KeyCount {
		return
	}
	t.Down[k] = down
	if !down {
		t.Processed[k] = false
	}
}

// Held returns true while the key is down.
func (t *KeyTable) Held(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	return t.Down[k]
}

// Pressed returns true once per physical press: the first call while the key
// is down marks it processed, later calls return false until it is released.
func (t *KeyTable) Pressed(k Key) bool {
	if !t.Held(k) || t.Processed[k] {
		return false
	}
	t.Processed[k] = true
	return true
}

// Clear releases every key.
func (t *KeyTable) Clear() {
	for k := range t.Down {
		t.Down[k] = false
		t.Processed[k] = false
	}
}
