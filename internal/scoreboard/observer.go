package scoreboard

// Op names a board mutation.
type Op string

// Board mutations reported to observers.
const (
	OpStart  Op = "start"
	OpFinish Op = "finish"
	OpUpdate Op = "update"
)

// Event describes the outcome of one mutating call on a Board.
type Event struct {
	// Op is the operation that was attempted.
	Op Op
	// Game is the fixture after the operation. For OpFinish it holds the
	// final score. For rejected operations only Home and Away are set.
	Game Game
	// Previous holds the score before an accepted OpUpdate.
	Previous Game
	// Err is non-nil when the operation was rejected.
	Err error
	// Revision increases by one with every accepted mutation. It is zero
	// for rejected operations.
	Revision uint64
	// Active is the number of active fixtures right after an accepted
	// mutation.
	Active int
}

// Accepted reports whether the operation changed the board.
func (e Event) Accepted() bool { return e.Err == nil }

// Observer receives an Event for every Start, Finish and UpdateScore call.
//
// Observe is invoked synchronously after the board lock has been released, so
// implementations may read the board (for example to take a fresh Summary)
// but should return quickly. Concurrent callers may deliver events out of
// order: an observer that keeps board-wide state should order events by
// Revision rather than by arrival.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }
