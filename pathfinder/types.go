package pathfinder

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/astar"
)

// Sentinel errors for pathfinder.
var (
	ErrNilWorld        = errors.New("pathfinder: map and belief are required")
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")
	ErrBlockedEndpoint = errors.New("pathfinder: endpoint is blocked or off the map")
	ErrNoPath          = errors.New("pathfinder: no path")
	ErrReplanLimit     = errors.New("pathfinder: replan limit reached")
)

// Level names the tier a search ran at.
type Level int

const (
	Coarse Level = iota
	Fine
	Flat
)

func (l Level) String() string {
	switch l {
	case Coarse:
		return "coarse"
	case Fine:
		return "fine"
	case Flat:
		return "flat"
	}

	return fmt.Sprintf("level(%d)", int(l))
}

// Observer receives planning events.
type Observer interface {
	SearchDone(level Level, stats astar.Stats, found bool)
	WindowReviewed(window int64, reopened int)
	Replanned()
}

type nopObserver struct{}

func (nopObserver) SearchDone(Level, astar.Stats, bool) {}
func (nopObserver) WindowReviewed(int64, int)           {}
func (nopObserver) Replanned()                          {}

// Options configures a Pathfinder or Agent.
type Options struct {
	// MaxWindow, MinWindow and WindowStep drive stale-belief escalation.
	MaxWindow  int64
	MinWindow  int64
	WindowStep int64

	// MaxExpansions bounds every single A* run; 0 means unbounded.
	MaxExpansions int

	// MaxReplans bounds Agent.Travel; 0 means unbounded.
	MaxReplans int

	Logger   *zap.Logger
	Observer Observer
}

// Option represents a functional option.
type Option func(*Options)

// DefaultOptions returns windows 50 down to 1 in steps of 10, unbounded
// searches and at most 100 replans.
func DefaultOptions() Options {
	return Options{
		MaxWindow:  50,
		MinWindow:  1,
		WindowStep: 10,
		MaxReplans: 100,
		Logger:     zap.NewNop(),
		Observer:   nopObserver{},
	}
}

// WithWindows sets the escalation range.
func WithWindows(maxWindow, minWindow, step int64) Option {
	return func(o *Options) {
		o.MaxWindow, o.MinWindow, o.WindowStep = maxWindow, minWindow, step
	}
}

// WithMaxExpansions bounds each A* run.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithMaxReplans bounds Agent.Travel.
func WithMaxReplans(n int) Option {
	return func(o *Options) { o.MaxReplans = n }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver sets the event sink.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

func (o Options) validate() error {
	switch {
	case o.MinWindow < 0:
		return fmt.Errorf("%w: MinWindow %d < 0", ErrOptionViolation, o.MinWindow)
	case o.MaxWindow < o.MinWindow:
		return fmt.Errorf("%w: MaxWindow %d < MinWindow %d", ErrOptionViolation, o.MaxWindow, o.MinWindow)
	case o.WindowStep <= 0:
		return fmt.Errorf("%w: WindowStep %d <= 0", ErrOptionViolation, o.WindowStep)
	case o.MaxExpansions < 0:
		return fmt.Errorf("%w: MaxExpansions %d < 0", ErrOptionViolation, o.MaxExpansions)
	case o.MaxReplans < 0:
		return fmt.Errorf("%w: MaxReplans %d < 0", ErrOptionViolation, o.MaxReplans)
	}

	return nil
}

// windows lists the review windows from largest to smallest.
func (o Options) windows() []int64 {
	var out []int64
	for w := o.MaxWindow; w > o.MinWindow; w -= o.WindowStep {
		out = append(out, w)
	}

	return append(out, o.MinWindow)
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.validate()
}
