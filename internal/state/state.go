package state

import "sync"

// Phase is where the frame loop currently is.
type Phase int

const (
	BOOTING Phase = iota
	RUNNING
	STOPPED
	ERROR
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "booting"
	case RUNNING:
		return "running"
	case STOPPED:
		return "stopped"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

// Status is what the loop publishes after every frame for readers on other
// goroutines (the preview server). The facade itself is never shared.
type Status struct {
	Phase    Phase
	Title    string
	Width    int
	Height   int
	Frame    uint64
	Errors   []string
	Pressed  []string
	Polygons int
	Circles  int
	Rects    int
	Err      string
}

type Store struct {
	mu    sync.RWMutex
	state Status
}

func NewStore() *Store {
	return &Store{state: Status{Phase: BOOTING}}
}

func (store *Store) Snapshot() Status {
	store.mu.RLock()
	defer store.mu.RUnlock()
	out := store.state
	out.Errors = cloneStrings(store.state.Errors)
	out.Pressed = cloneStrings(store.state.Pressed)
	return out
}

func (store *Store) Publish(status Status) {
	status.Errors = cloneStrings(status.Errors)
	status.Pressed = cloneStrings(status.Pressed)
	store.mu.Lock()
	store.state = status
	store.mu.Unlock()
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

// Fail moves the store to ERROR and keeps the message for readers.
func (store *Store) Fail(err error) {
	store.mu.Lock()
	store.state.Phase = ERROR
	if err != nil {
		store.state.Err = err.Error()
	}
	store.mu.Unlock()
}

func cloneStrings(input []string) []string {
	if len(input) == 0 {
		return nil
	}
	out := make([]string, len(input))
	copy(out, input)
	return out
}
