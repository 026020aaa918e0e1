// Package ledger accounts for the memory owned by variant values.
//
// Every String or Array payload held by a variant.Value is backed by a Lease
// taken from a Ledger. Releasing the lease is how ownership ends, so a ledger
// whose Live count returns to zero has seen every owned payload released
// exactly once. Releasing a lease twice (the hazard of shallow value sets) is
// detected, counted and logged instead of corrupting the counters.
//
// A ledger may carry limits. An acquisition that would exceed them is refused
// with errors.ErrBadMalloc, which is how allocation failure surfaces in a
// garbage-collected runtime.
package ledger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/amp-labs/tofu/envutil"
	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/logger"
	"github.com/amp-labs/tofu/xform"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// ErrDoubleRelease is returned when a lease is released more than once.
var ErrDoubleRelease = errors.New("lease already released")

// Options configures a Ledger.
type Options struct {
	// Name labels the ledger's metrics. Defaults to "ledger-<uuid>".
	Name string

	// MaxLeases caps the number of live leases. Zero means unlimited.
	MaxLeases int64

	// MaxBytes caps the number of live bytes. Zero means unlimited.
	MaxBytes int64

	// Logger receives double-release and refusal reports. Defaults to logger.Get().
	Logger *slog.Logger
}

// Ledger tracks live leases. It is safe for concurrent use.
type Ledger struct {
	name      string
	maxLeases int64
	maxBytes  int64
	log       *slog.Logger

	live           *atomic.Int64
	liveBytes      *atomic.Int64
	acquired       *atomic.Int64
	doubleReleases *atomic.Int64
}

// New creates a ledger.
func New(opts Options) *Ledger {
	name := opts.Name
	if name == "" {
		name = "ledger-" + uuid.NewString()
	}

	l := &Ledger{
		name:           name,
		maxLeases:      opts.MaxLeases,
		maxBytes:       opts.MaxBytes,
		log:            opts.Logger,
		live:           atomic.NewInt64(0),
		liveBytes:      atomic.NewInt64(0),
		acquired:       atomic.NewInt64(0),
		doubleReleases: atomic.NewInt64(0),
	}

	liveLeases.WithLabelValues(name).Set(0)
	liveBytes.WithLabelValues(name).Set(0)
	leasesAcquired.WithLabelValues(name).Add(0)
	leasesReleased.WithLabelValues(name).Add(0)
	doubleReleases.WithLabelValues(name).Add(0)

	return l
}

var defaultLedger = sync.OnceValue(func() *Ledger { //nolint:gochecknoglobals
	nonNegative := envutil.Validate(func(v int64) error {
		_, err := xform.NonNegative(v)

		return err
	})

	return New(Options{
		Name:      "default",
		MaxLeases: envutil.Int[int64]("TOFU_LEDGER_MAX_LEASES", envutil.Default[int64](0), nonNegative).ValueOrElse(0),
		MaxBytes:  envutil.Int[int64]("TOFU_LEDGER_MAX_BYTES", envutil.Default[int64](0), nonNegative).ValueOrElse(0),
	})
})

// Default returns the process-wide ledger. Its limits are read once from
// TOFU_LEDGER_MAX_LEASES and TOFU_LEDGER_MAX_BYTES.
func Default() *Ledger {
	return defaultLedger()
}

func (l *Ledger) logger() *slog.Logger {
	if l.log != nil {
		return l.log
	}

	return logger.Get()
}

// Name returns the ledger's metric label.
func (l *Ledger) Name() string {
	return l.name
}

// Live returns the number of leases acquired and not yet released.
func (l *Ledger) Live() int64 {
	return l.live.Load()
}

// LiveBytes returns the bytes held by live leases.
func (l *Ledger) LiveBytes() int64 {
	return l.liveBytes.Load()
}

// Acquired returns the total number of leases ever acquired.
func (l *Ledger) Acquired() int64 {
	return l.acquired.Load()
}

// DoubleReleases returns how many times an already released lease was released again.
func (l *Ledger) DoubleReleases() int64 {
	return l.doubleReleases.Load()
}

// Acquire takes a lease for size bytes of owned memory.
func (l *Ledger) Acquire(size int64) (*Lease, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative lease size %d", errors.ErrBadRange, size)
	}

	live := l.live.Inc()
	if l.maxLeases > 0 && live > l.maxLeases {
		l.live.Dec()

		return nil, l.refuse("leases", size)
	}

	bytes := l.liveBytes.Add(size)
	if l.maxBytes > 0 && bytes > l.maxBytes {
		l.liveBytes.Sub(size)
		l.live.Dec()

		return nil, l.refuse("bytes", size)
	}

	l.acquired.Inc()
	liveLeases.WithLabelValues(l.name).Inc()
	liveBytes.WithLabelValues(l.name).Add(float64(size))
	leasesAcquired.WithLabelValues(l.name).Inc()

	return &Lease{ledger: l, size: size, released: atomic.NewBool(false)}, nil
}

func (l *Ledger) refuse(limit string, size int64) error {
	refusals.WithLabelValues(l.name, limit).Inc()

	err := logger.AnnotateError(
		fmt.Errorf("%w: ledger %s reached its %s limit", errors.ErrBadMalloc, l.name, limit),
		"ledger", l.name, "limit", limit, "size", size)

	l.logger().Debug("allocation refused", "error", err)

	return err
}

// Lease is the exclusive-owner handle for one owned payload.
type Lease struct {
	ledger   *Ledger
	size     int64
	released *atomic.Bool
}

// Size returns the number of bytes the lease accounts for.
func (l *Lease) Size() int64 {
	return l.size
}

// Ledger returns the ledger the lease was taken from.
func (l *Lease) Ledger() *Ledger {
	return l.ledger
}

// Released reports whether the lease has been released.
func (l *Lease) Released() bool {
	return l.released.Load()
}

// Release returns the lease to its ledger. Only the first call has an effect;
// later calls return ErrDoubleRelease and are logged at error level.
func (l *Lease) Release() error {
	if l == nil {
		return nil
	}

	owner := l.ledger

	if !l.released.CompareAndSwap(false, true) {
		owner.doubleReleases.Inc()
		doubleReleases.WithLabelValues(owner.name).Inc()

		err := logger.AnnotateError(ErrDoubleRelease, "ledger", owner.name, "size", l.size)
		owner.logger().Error("owned payload released twice", "error", err)

		return err
	}

	owner.live.Dec()
	owner.liveBytes.Sub(l.size)
	liveLeases.WithLabelValues(owner.name).Dec()
	liveBytes.WithLabelValues(owner.name).Sub(float64(l.size))
	leasesReleased.WithLabelValues(owner.name).Inc()

	return nil
}
