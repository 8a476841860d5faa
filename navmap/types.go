package navmap

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/portal"
)

// Sentinel errors for navmap.
var (
	ErrNilSource        = errors.New("navmap: source map is nil")
	ErrOptionViolation  = errors.New("navmap: invalid option supplied")
	ErrUnknownGroup     = errors.New("navmap: portal group does not belong to this map")
	ErrWrongSide        = errors.New("navmap: area is not a side of the portal group")
	ErrBadFraction      = errors.New("navmap: fraction must be within [0,1]")
	ErrSnapshotMismatch = errors.New("navmap: snapshot does not match the map")
)

// Option configures a Map.
type Option func(*Options)

// Options holds Map settings.
type Options struct {
	Logger       *zap.Logger
	MaxGroupSize int
}

// DefaultOptions returns a no-op logger and unbounded portal groups.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger used for build summaries and anomalies.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxGroupSize forwards a portal group cap to the portal builder.
// See portal.WithMaxGroupSize.
func WithMaxGroupSize(n int) Option {
	return func(o *Options) { o.MaxGroupSize = n }
}

func (o Options) portalOptions() []portal.Option {
	return []portal.Option{
		portal.WithLogger(o.Logger),
		portal.WithMaxGroupSize(o.MaxGroupSize),
	}
}
