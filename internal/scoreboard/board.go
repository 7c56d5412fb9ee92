package scoreboard

import (
	"slices"
	"sync"

	"github.com/agbru/scoreboard/internal/logging"
)

// entry is the registry's private record for one active fixture.
type entry struct {
	game Game
	// seq is assigned on Start and refreshed on every UpdateScore.
	// Higher means more recent.
	seq uint64
}

// Board is the in-memory registry of active fixtures.
// The zero value is not usable; create boards with New.
type Board struct {
	mu      sync.RWMutex
	games   map[Fixture]*entry
	nextSeq uint64
	// revision counts accepted mutations.
	revision uint64

	observers []Observer
	logger    logging.Logger
}

// Option configures a Board during construction.
type Option func(*Board)

// WithObserver registers o to receive an Event for every mutating call.
// Observers are notified in registration order.
func WithObserver(o Observer) Option {
	return func(b *Board) {
		if o != nil {
			b.observers = append(b.observers, o)
		}
	}
}

// WithLogger sets the logger used for debug tracing of board operations.
func WithLogger(l logging.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates an empty Board.
func New(opts ...Option) *Board {
	b := &Board{
		games:  make(map[Fixture]*entry),
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start registers a new fixture with a 0-0 score.
//
// It fails with a *TeamNameError if either name is invalid (home checked
// first) and with a *GameError wrapping ErrAlreadyExists if the fixture is
// already active.
func (b *Board) Start(home, away string) error {
	ev := Event{Op: OpStart, Game: Game{Home: home, Away: away}}
	ev.Err = b.start(&ev)
	b.notify(ev)
	return ev.Err
}

func (b *Board) start(ev *Event) error {
	game := ev.Game
	if err := validateTeams(game.Home, game.Away); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := game.Key()
	if _, ok := b.games[key]; ok {
		return &GameError{Home: game.Home, Away: game.Away, Err: ErrAlreadyExists}
	}
	b.games[key] = &entry{game: game, seq: b.advance()}
	b.stamp(ev)
	return nil
}

// Finish removes an active fixture.
//
// It fails with a *TeamNameError if either name is invalid and with a
// *GameError wrapping ErrDoesNotExist if the fixture is not active.
func (b *Board) Finish(home, away string) error {
	ev := Event{Op: OpFinish, Game: Game{Home: home, Away: away}}
	ev.Err = b.finish(&ev)
	b.notify(ev)
	return ev.Err
}

func (b *Board) finish(ev *Event) error {
	home, away := ev.Game.Home, ev.Game.Away
	if err := validateTeams(home, away); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := Fixture{Home: home, Away: away}
	e, ok := b.games[key]
	if !ok {
		return &GameError{Home: home, Away: away, Err: ErrDoesNotExist}
	}
	delete(b.games, key)
	ev.Game = e.game
	b.stamp(ev)
	return nil
}

// UpdateScore replaces the score of an active fixture with the given pair.
//
// Checks run in this order: team names (home, then away), fixture existence,
// scores (home, then away). The first failure is returned and nothing is
// changed. Both scores are replaced together; a successful update also makes
// the fixture the most recent one for summary tie-breaking.
func (b *Board) UpdateScore(home string, homeScore int, away string, awayScore int) error {
	ev := Event{Op: OpUpdate, Game: Game{Home: home, Away: away}}
	ev.Err = b.updateScore(&ev, homeScore, awayScore)
	b.notify(ev)
	return ev.Err
}

func (b *Board) updateScore(ev *Event, homeScore, awayScore int) error {
	home, away := ev.Game.Home, ev.Game.Away
	if err := validateTeams(home, away); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.games[Fixture{Home: home, Away: away}]
	if !ok {
		return &GameError{Home: home, Away: away, Err: ErrDoesNotExist}
	}
	if err := validateScores(homeScore, awayScore); err != nil {
		return err
	}

	ev.Previous = e.game
	e.game.HomeScore = homeScore
	e.game.AwayScore = awayScore
	e.seq = b.advance()
	ev.Game = e.game
	b.stamp(ev)
	return nil
}

// Summary returns every active fixture ordered by total score, highest
// first, with ties broken by recency (most recently started or updated
// first). The returned slice is a snapshot owned by the caller.
func (b *Board) Summary() []Game {
	b.mu.RLock()
	entries := make([]entry, 0, len(b.games))
	for _, e := range b.games {
		entries = append(entries, *e)
	}
	b.mu.RUnlock()

	slices.SortFunc(entries, func(x, y entry) int {
		if d := y.game.Total() - x.game.Total(); d != 0 {
			return d
		}
		switch {
		case x.seq > y.seq:
			return -1
		case x.seq < y.seq:
			return 1
		}
		return 0
	})

	games := make([]Game, len(entries))
	for i, e := range entries {
		games[i] = e.game
	}
	return games
}

// Game returns the active fixture (home, away), if any.
func (b *Board) Game(home, away string) (Game, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.games[Fixture{Home: home, Away: away}]
	if !ok {
		return Game{}, false
	}
	return e.game, true
}

// Len returns the number of active fixtures.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.games)
}

// advance returns the next sequence number. Callers must hold b.mu.
func (b *Board) advance() uint64 {
	b.nextSeq++
	return b.nextSeq
}

// stamp records the board state after an accepted mutation. Callers must
// hold b.mu.
func (b *Board) stamp(ev *Event) {
	b.revision++
	ev.Revision = b.revision
	ev.Active = len(b.games)
}

func (b *Board) notify(ev Event) {
	if ev.Err != nil {
		b.logger.Debug("operation rejected",
			logging.String("op", string(ev.Op)),
			logging.String("fixture", ev.Game.Key().String()),
			logging.Err(ev.Err))
	} else {
		b.logger.Debug("operation applied",
			logging.String("op", string(ev.Op)),
			logging.String("game", ev.Game.String()))
	}
	for _, o := range b.observers {
		o.Observe(ev)
	}
}
