package core

import (
	"fmt"
	"iter"
)

// CascadeState is the resolver's position in the detect/collapse loop.
type CascadeState uint8

const (
	CascadeStable CascadeState = iota
	CascadeMatchFound
	CascadeCollapsing
)

// String returns the state name.
func (s CascadeState) String() string {
	switch s {
	case CascadeStable:
		return "stable"
	case CascadeMatchFound:
		return "match_found"
	case CascadeCollapsing:
		return "collapsing"
	default:
		return "unknown"
	}
}

// CascadeOptions configures a cascade.
type CascadeOptions struct {
	Threshold int // Minimum run length (0 = DefaultThreshold)
	Kinds     int // Tile kinds drawn on refill (0 = DefaultKinds)
	RNG       RNG // Required; refills draw from it
	MaxSteps  int // Stop after this many collapses (0 = unbounded)
}

func (o CascadeOptions) kinds() int {
	if o.Kinds <= 0 {
		return DefaultKinds
	}
	return o.Kinds
}

// Step is one detect+collapse cycle.
type Step struct {
	Index   int      // 1-based position in the cascade
	Matches MatchSet // Cells cleared by this step
	Falls   []Fall   // Tile movements and refills
	Grid    *Grid    // Board after the collapse (a copy)
}

// Cascade drives the detect/collapse loop over a grid until no match is left.
// Each call to Next performs one full cycle so the caller can pace them.
type Cascade struct {
	grid     *Grid
	opts     CascadeOptions
	detector Detector
	state    CascadeState
	pending  MatchSet
	peeked   bool
	steps    int
	done     bool
	err      error
}

// NewCascade starts a cascade in the Stable state. The grid is mutated in
// place by Next.
func NewCascade(g *Grid, opts CascadeOptions) *Cascade {
	return &Cascade{
		grid:     g,
		opts:     opts,
		detector: Detector{Threshold: opts.Threshold},
		state:    CascadeStable,
	}
}

// State returns the current state.
func (c *Cascade) State() CascadeState {
	return c.state
}

// Steps returns the number of completed collapses.
func (c *Cascade) Steps() int {
	return c.steps
}

// Done reports whether the cascade has halted.
func (c *Cascade) Done() bool {
	return c.done
}

// Err returns ErrCascadeLimit if the cascade was stopped by MaxSteps with
// matches still on the board, or ErrNoRNG if a collapse was due without an RNG.
func (c *Cascade) Err() error {
	return c.err
}

// Peek returns the matches the next step will clear, detecting them if needed.
func (c *Cascade) Peek() MatchSet {
	if c.done {
		return MatchSet{}
	}
	if !c.peeked {
		c.pending = c.detector.Detect(c.grid)
		c.peeked = true
		if !c.pending.Empty() {
			c.state = CascadeMatchFound
		}
	}
	return c.pending
}

// Next performs one detect+collapse cycle and returns its snapshot.
// It returns false once a full detection pass finds nothing, or when the
// step cap is reached.
func (c *Cascade) Next() (Step, bool) {
	if c.done {
		return Step{}, false
	}

	matches := c.Peek()
	if matches.Empty() {
		c.state = CascadeStable
		c.done = true
		return Step{}, false
	}
	if c.opts.MaxSteps > 0 && c.steps >= c.opts.MaxSteps {
		c.err = fmt.Errorf("%w: %d steps, %d cells still matched", ErrCascadeLimit, c.steps, matches.Len())
		c.done = true
		return Step{}, false
	}
	if c.opts.RNG == nil {
		c.err = ErrNoRNG
		c.done = true
		return Step{}, false
	}

	c.state = CascadeCollapsing
	falls := Collapse(c.grid, matches, c.opts.kinds(), c.opts.RNG)
	c.steps++
	c.peeked = false
	c.pending = MatchSet{}
	c.state = CascadeStable

	return Step{
		Index:   c.steps,
		Matches: matches,
		Falls:   falls,
		Grid:    c.grid.Clone(),
	}, true
}

// All returns the remaining steps as a lazy sequence. Check Err after the
// sequence ends.
func (c *Cascade) All() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			step, ok := c.Next()
			if !ok || !yield(step) {
				return
			}
		}
	}
}

// Resolve cascades g to a stable board, yielding one snapshot per cycle
// with a nil error. If the cascade stops early (ErrCascadeLimit, ErrNoRNG)
// a final pair carries the error and a zero Step; the board then still
// holds matches. The sequence is finite; iterating it again yields nothing
// because the board is already stable.
func Resolve(g *Grid, opts CascadeOptions) iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		c := NewCascade(g, opts)
		for {
			step, ok := c.Next()
			if !ok {
				break
			}
			if !yield(step, nil) {
				return
			}
		}
		if err := c.Err(); err != nil {
			yield(Step{}, err)
		}
	}
}

// Settle runs the cascade to completion without keeping snapshots and
// returns the number of steps taken.
func Settle(g *Grid, opts CascadeOptions) (int, error) {
	c := NewCascade(g, opts)
	for {
		if _, ok := c.Next(); !ok {
			break
		}
	}
	return c.Steps(), c.Err()
}

// GenerateStable creates a random rows×cols board and settles it so it
// starts with no matches.
func GenerateStable(rows, cols int, opts CascadeOptions) (*Grid, error) {
	if opts.RNG == nil {
		return nil, ErrNoRNG
	}
	g, err := NewRandomGrid(rows, cols, opts.kinds(), opts.RNG)
	if err != nil {
		return nil, err
	}
	if _, err := Settle(g, opts); err != nil {
		return nil, fmt.Errorf("settle initial board: %w", err)
	}
	return g, nil
}
