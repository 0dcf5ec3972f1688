package solver

import (
	"errors"
	"math/rand"
	"time"

	"github.com/tfpf/solve-sudoku/internal/board"
)

var (
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
	ErrLogicDefect   = errors.New("board completed but failed validation")
)

// State is the controller state of a solve in progress.
type State int

const (
	// StateRunning: the previous pass made progress (or no pass has run yet).
	StateRunning State = iota
	// StateStalledOnce: the previous pass filled nothing; the next pass may
	// place one random guess.
	StateStalledOnce
	// StateGaveUp: a guess-authorized pass also filled nothing. Terminal.
	StateGaveUp
	// StateDone: no empty cells remain. Terminal.
	StateDone
)

func (s State) String() string {
	return [...]string{"running", "stalled", "gave up", "done"}[s]
}

// Outcome classifies the result of a finished solve attempt.
type Outcome int

const (
	// OutcomeUnknown: the solve has not reached a terminal state.
	OutcomeUnknown Outcome = iota
	// OutcomeSolved: the board is complete and verified.
	OutcomeSolved
	// OutcomeGaveUp: deduction stalled twice in a row; the board is left as
	// far as deduction could take it. An expected result, not an error.
	OutcomeGaveUp
	// OutcomeDefect: the board is complete but fails validation. This means
	// a deduction rule placed an illegal digit and must never happen.
	OutcomeDefect
)

func (o Outcome) String() string {
	return [...]string{"unknown", "solved", "gave up", "defect"}[o]
}

// MaxPasses bounds the number of deduction passes a solve can take: at most
// one productive pass per cell, and stalled passes never come in pairs
// except the final one before giving up.
const MaxPasses = 2*board.CellCount + 2

// Solver fills a Sudoku board by logical deduction, falling back to at most
// one random guess per stalled pass. It never backtracks: a bad guess is
// only discovered by validation at the end.
type Solver struct {
	Board   *board.Board
	options *Options
	rng     *rand.Rand
	state   State
	passes  int
}

// Options configures solving behavior.
type Options struct {
	// Seed makes guess selection reproducible. 0 means time-based.
	Seed int64

	// Choose picks one digit from a non-empty candidate list whenever the
	// controller is authorized to guess. If nil, a digit is drawn uniformly
	// from a rand.Rand seeded with Seed. Injecting a Choose func keeps
	// solving fully deterministic.
	Choose func(candidates []int) int
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{}
}

// New creates a solver for the given board. The board is cloned; the
// caller's copy is never mutated.
func New(b *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	s := &Solver{
		Board:   b.Clone(),
		options: options,
		state:   StateRunning,
	}

	if options.Choose == nil {
		seed := options.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	return s
}

// State returns the current controller state.
func (s *Solver) State() State {
	return s.state
}

// Passes returns the number of deduction passes run so far.
func (s *Solver) Passes() int {
	return s.passes
}

// Outcome classifies the solve. OutcomeUnknown until a terminal state is
// reached.
func (s *Solver) Outcome() Outcome {
	switch s.state {
	case StateGaveUp:
		return OutcomeGaveUp
	case StateDone:
		if s.Board.IsSolved() {
			return OutcomeSolved
		}
		return OutcomeDefect
	default:
		return OutcomeUnknown
	}
}

// Step advances the controller by one iteration: it checks for completion,
// runs a single deduction pass, and transitions state based on whether the
// pass filled any cell. Guessing is authorized for a pass only when the
// previous pass stalled. Calling Step in a terminal state does nothing.
func (s *Solver) Step() State {
	if s.state == StateGaveUp || s.state == StateDone {
		return s.state
	}

	empty := s.Board.EmptyCount()
	if empty == 0 {
		s.state = StateDone
		return s.state
	}

	s.pass(s.state == StateStalledOnce)
	s.passes++

	switch after := s.Board.EmptyCount(); {
	case after < empty:
		// Progress was made; a guess that fired counts as progress too,
		// so authorization is withdrawn either way.
		s.state = StateRunning
	case s.state == StateRunning:
		s.state = StateStalledOnce
	default:
		// Even the permitted guess could not be placed: every remaining
		// empty cell has no legal candidate.
		s.state = StateGaveUp
	}
	return s.state
}

// Solve runs the controller to termination and reports the outcome.
// The returned board is complete on OutcomeSolved, partially filled on
// OutcomeGaveUp. ErrInvalidPuzzle is returned without solving if the input
// already violates the uniqueness constraint; ErrLogicDefect accompanies
// OutcomeDefect.
func (s *Solver) Solve() (*board.Board, Outcome, error) {
	if !s.Board.IsValid() {
		return nil, OutcomeUnknown, ErrInvalidPuzzle
	}

	for st := s.Step(); st != StateDone && st != StateGaveUp; st = s.Step() {
	}

	outcome := s.Outcome()
	if outcome == OutcomeDefect {
		return s.Board, outcome, ErrLogicDefect
	}
	return s.Board, outcome, nil
}

// choose selects one digit from a non-empty candidate list.
func (s *Solver) choose(candidates []int) int {
	if s.options.Choose != nil {
		return s.options.Choose(candidates)
	}
	return candidates[s.rng.Intn(len(candidates))]
}
