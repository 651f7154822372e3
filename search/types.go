package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mazepath/grid"
)

// MaxDelay is the animation delay ceiling; WithDelay clamps to it.
const MaxDelay = time.Second

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned when a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the enum.
	ErrUnknownAlgorithm = errors.New("search: unknown search algorithm")

	// ErrBusy indicates a run was requested while another is in flight;
	// Stop() the active run first.
	ErrBusy = errors.New("search: a run is already in flight")

	// ErrStopped reports deliberate caller-initiated cancellation. It is not
	// a failure: the run delivers no result and the grid annotations are
	// reset to their pre-search state.
	ErrStopped = errors.New("search: run stopped")

	// ErrBadDelay indicates a negative animation delay.
	ErrBadDelay = errors.New("search: animation delay must not be negative")
)

// Algorithm selects one of the nine search strategies. The zero value is
// Dijkstra.
type Algorithm int

const (
	// Dijkstra expands by cumulative cost; guarantees shortest paths.
	Dijkstra Algorithm = iota
	// AStar adds an admissible Manhattan heuristic to Dijkstra.
	AStar
	// BFS uses a FIFO frontier; shortest by edge count.
	BFS
	// DFS uses a LIFO frontier; no shortest-path guarantee.
	DFS
	// Bidirectional grows FIFO frontiers from both endpoints.
	Bidirectional
	// GreedyBestFirst orders purely by heuristic; fast, not optimal.
	GreedyBestFirst
	// IDAStar iteratively deepens an f-bound with bounded memory.
	IDAStar
	// FringeSearch partitions candidates by an f-limit per pass.
	FringeSearch
	// ThetaStar allows any-angle parent shortcuts via line-of-sight tests.
	ThetaStar
)

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Bidirectional:
		return "Bidirectional"
	case GreedyBestFirst:
		return "GreedyBestFirst"
	case IDAStar:
		return "IDA*"
	case FringeSearch:
		return "FringeSearch"
	case ThetaStar:
		return "Theta*"
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// State is the lifecycle phase of a Runner.
//
//	Idle → Running → {Paused ⇄ Running} → {Completed | Stopped}
type State int

const (
	// StateIdle means no run has started (or Reset was called).
	StateIdle State = iota
	// StateRunning means a search is stepping.
	StateRunning
	// StatePaused means the run is suspended and consuming no CPU.
	StatePaused
	// StateStopped means the run was cancelled; terminal until Reset.
	StateStopped
	// StateCompleted means the run finished (found a path or proved none).
	StateCompleted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateStopped:
		return "Stopped"
	case StateCompleted:
		return "Completed"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Result is the immutable outcome of one completed search run. An empty
// Path is the valid "no path exists" negative result, not an error.
type Result struct {
	// Path is the ordered cell sequence from Start to End (nil/empty when
	// no path exists).
	Path []grid.Point
	// Visited lists every cell the run committed to exploring, in first-
	// visit order, excluding walls.
	Visited []grid.Point
	// Elapsed is the wall-clock duration of the run, animation included.
	Elapsed time.Duration
}

// Options holds run parameters and callbacks. Use DefaultOptions plus
// functional Option values, exactly as in the generator package.
type Options struct {
	// Ctx allows external cancellation and deadlines.
	Ctx context.Context

	// Delay is the animation pause honored after each visited cell;
	// 0 disables animation (the default, and what tests use).
	Delay time.Duration

	// OnVisit is invoked for each cell as the run commits to exploring it.
	// The hook runs on the searching goroutine; keep it light.
	OnVisit func(p grid.Point)

	// internal error recorded during option parsing
	err error
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no animation
// delay, and no visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Delay: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDelay sets the per-step animation delay. Negative values surface as
// ErrBadDelay when the run starts; values above MaxDelay are clamped.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: %v", ErrBadDelay, d)
		case d > MaxDelay:
			o.Delay = MaxDelay
		default:
			o.Delay = d
		}
	}
}

// WithOnVisit registers a per-step visitation observer, e.g. an animation
// driver. Nil hooks are ignored.
func WithOnVisit(fn func(p grid.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
