package search

import (
	"sync"
	"time"

	"github.com/katalvlaran/mazepath/grid"
)

// visitFunc is the engine's suspension point: algorithms call it for every
// cell they commit to exploring. A non-nil error aborts the algorithm and
// propagates out of the run (the Runner returns ErrStopped or a context
// error).
type visitFunc func(p grid.Point) error

// stepFunc is a pure search algorithm: grid in, ordered path out, side
// effects limited to the visit callback. Timing and grid annotation belong
// to the Runner.
type stepFunc func(g *grid.Grid, visit visitFunc) ([]grid.Point, error)

// stepFor dispatches the algorithm enum to its pure step function.
func stepFor(algo Algorithm) (stepFunc, error) {
	switch algo {
	case Dijkstra:
		return dijkstra, nil
	case AStar:
		return aStar, nil
	case BFS:
		return breadthFirst, nil
	case DFS:
		return depthFirst, nil
	case Bidirectional:
		return bidirectional, nil
	case GreedyBestFirst:
		return greedyBestFirst, nil
	case IDAStar:
		return idaStar, nil
	case FringeSearch:
		return fringeSearch, nil
	case ThetaStar:
		return thetaStar, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// Runner executes search runs over a single grid under the single-writer
// discipline: exactly one run may be in flight, and only that run mutates
// the grid. Pause suspends the stepping goroutine on a condition variable
// (no busy waiting); Stop cancels at the next suspension point and resets
// the grid's annotations.
type Runner struct {
	mu      sync.Mutex
	cond    *sync.Cond
	state   State
	paused  bool
	stopped bool
	stopCh  chan struct{}

	grid *grid.Grid
	opts Options
}

// NewRunner wraps g in a run controller. Returns ErrNilGrid for nil grids
// and any recorded option violation (e.g. ErrBadDelay).
func NewRunner(g *grid.Grid, opts ...Option) (*Runner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &Runner{state: StateIdle, grid: g, opts: o}
	r.cond = sync.NewCond(&r.mu)

	return r, nil
}

// Find is the one-shot convenience: run algo over g to completion with the
// given options and return the result. Equivalent to NewRunner(g, opts...)
// followed by Run(algo).
func Find(g *grid.Grid, algo Algorithm, opts ...Option) (*Result, error) {
	r, err := NewRunner(g, opts...)
	if err != nil {
		return nil, err
	}

	return r.Run(algo)
}

// State returns the current lifecycle phase.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

// Pause toggles cooperative suspension. Pausing takes effect at the next
// step boundary; resuming continues from the exact frontier state. No-op
// unless a run is in flight.
func (r *Runner) Pause(pause bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateRunning && r.state != StatePaused {
		return
	}
	r.paused = pause
	r.cond.Broadcast()
}

// Stop cancels the in-flight run at its next suspension point (including
// mid-sleep). The run discards its partial path, resets the grid's
// annotations, and commits no statistics. No-op when nothing runs.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || (r.state != StateRunning && r.state != StatePaused) {
		return
	}
	r.stopped = true
	close(r.stopCh)
	r.cond.Broadcast()
}

// Reset returns a finished (Completed/Stopped) or Idle runner to Idle and
// clears the grid's Visited/Route annotations. Returns ErrBusy while a run
// is in flight — Stop() is the precondition for starting over.
func (r *Runner) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateRunning || r.state == StatePaused {
		return ErrBusy
	}
	r.grid.ResetAnnotations()
	r.state = StateIdle

	return nil
}

// Run executes the selected algorithm to completion, streaming visited
// cells to the OnVisit observer and honoring the animation delay between
// steps.
//
// Returns:
//   - (*Result, nil) on completion — an empty Result.Path means no path
//     exists, which is a valid negative outcome, not an error.
//   - (nil, ErrStopped) when Stop() cancelled the run; grid annotations are
//     reset to the pre-search state.
//   - (nil, ctx.Err()) when the run context is cancelled (same reset).
//   - (nil, ErrBusy) when another run is in flight.
func (r *Runner) Run(algo Algorithm) (*Result, error) {
	step, err := stepFor(algo)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.state == StateRunning || r.state == StatePaused {
		r.mu.Unlock()

		return nil, ErrBusy
	}
	// Defensive endpoint invariant check (generators make this unreachable).
	if r.grid.At(r.grid.Start()) != grid.Start || r.grid.At(r.grid.End()) != grid.End {
		r.mu.Unlock()

		return nil, grid.ErrEndpointWall
	}
	r.state = StateRunning
	r.paused = false
	r.stopped = false
	r.stopCh = make(chan struct{})
	r.mu.Unlock()

	var (
		visited []grid.Point
		seen    = make(map[grid.Point]bool)
		started = time.Now()
	)
	visit := func(p grid.Point) error {
		if cErr := r.checkpoint(); cErr != nil {
			return cErr
		}
		r.grid.MarkVisited(p)
		if !seen[p] {
			seen[p] = true
			visited = append(visited, p)
		}
		if r.opts.OnVisit != nil {
			r.opts.OnVisit(p)
		}

		return r.sleep()
	}

	path, err := step(r.grid, visit)
	if err != nil {
		// Cancellation: no partial result, annotations back to pre-search.
		r.grid.ResetAnnotations()
		r.setState(StateStopped)

		return nil, err
	}

	for _, p := range path {
		r.grid.MarkRoute(p)
	}
	res := &Result{Path: path, Visited: visited, Elapsed: time.Since(started)}
	r.setState(StateCompleted)

	return res, nil
}

// checkpoint is the per-step suspension point: it blocks (without CPU) while
// paused, and reports ErrStopped / context errors when the run must abort.
func (r *Runner) checkpoint() error {
	r.mu.Lock()
	for r.paused && !r.stopped {
		r.state = StatePaused
		r.cond.Wait()
	}
	if r.state == StatePaused {
		r.state = StateRunning
	}
	stopped := r.stopped
	r.mu.Unlock()

	if stopped {
		return ErrStopped
	}
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
	}

	return nil
}

// sleep honors the animation delay, waking immediately on Stop or context
// cancellation so a stopping run never waits out its delay.
func (r *Runner) sleep() error {
	if r.opts.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(r.opts.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-r.stopCh:
		return ErrStopped
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	}
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}
