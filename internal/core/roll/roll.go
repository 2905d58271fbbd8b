// Package roll implements the dice roll sequencing logic: sampling a final
// outcome, driving the timed animation countdown, and committing results to
// the roll history. It performs no rendering and no I/O of its own.
package roll

import (
	"math/rand"
	"time"
)

// Sides is the number of faces on the die.
const Sides = 6

// Default animation parameters. The step interval matches the cadence of a
// short tumble; five transient faces before the final one reads as a roll
// without dragging.
const (
	DefaultSteps        = 5
	DefaultStepInterval = 100 * time.Millisecond
	DefaultDisplayLimit = 5
)

// Face is a single die face value in [1, Sides].
type Face int

// Valid reports whether f is a legal die face.
func (f Face) Valid() bool {
	return f >= 1 && f <= Sides
}

// Source produces die faces. Production code uses RandomSource; tests inject
// fixed or scripted sources.
type Source func() Face

// RandomSource returns a Source sampling uniformly from [1, Sides].
func RandomSource(rng *rand.Rand) Source {
	return func() Face {
		return Face(rng.Intn(Sides) + 1)
	}
}

// Scheduler runs fn once after d has elapsed. Implementations must guarantee
// strict sequential, non-overlapping invocation on the event-loop thread;
// this is a cooperative timer, not a parallelism primitive.
type Scheduler func(d time.Duration, fn func())

// Presenter receives roll events from the Controller. Implementations must
// not block on the sequencing path and must swallow their own render/playback
// failures; a failed frame or sound never aborts a roll.
type Presenter interface {
	// RenderFace displays a face, once per animation step and once for the
	// final outcome.
	RenderFace(f Face)
	// PlayRollSound triggers sound playback, fire-and-forget.
	PlayRollSound()
	// HistoryChanged delivers the recent history, most-recent-last, once per
	// completed roll.
	HistoryChanged(recent []Face)
	// SetTriggerEnabled toggles the roll trigger while a roll is in flight.
	SetTriggerEnabled(enabled bool)
}

// Options configures a Controller. Zero values fall back to the defaults.
type Options struct {
	Steps        int           // transient faces per roll
	StepInterval time.Duration // delay between animation steps
	DisplayLimit int           // history entries surfaced to the presenter
	Source       Source        // face sampler, defaults to time-seeded RandomSource
}

// Controller sequences a roll from trigger to committed result. It owns the
// randomness, the animation countdown, and the history buffer. All methods
// must be called from a single goroutine; the busy guard is the only
// concurrency control and it only rejects re-entrant rolls.
type Controller struct {
	presenter    Presenter
	schedule     Scheduler
	source       Source
	steps        int
	interval     time.Duration
	displayLimit int

	history *History
	busy    bool
}

// NewController creates a controller emitting to p and re-arming itself
// through schedule.
func NewController(p Presenter, schedule Scheduler, opts Options) *Controller {
	if opts.Steps <= 0 {
		opts.Steps = DefaultSteps
	}
	if opts.StepInterval <= 0 {
		opts.StepInterval = DefaultStepInterval
	}
	if opts.DisplayLimit <= 0 {
		opts.DisplayLimit = DefaultDisplayLimit
	}
	if opts.Source == nil {
		opts.Source = RandomSource(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	return &Controller{
		presenter:    p,
		schedule:     schedule,
		source:       opts.Source,
		steps:        opts.Steps,
		interval:     opts.StepInterval,
		displayLimit: opts.DisplayLimit,
		history:      NewHistory(),
	}
}

// Busy reports whether a roll animation is in flight.
func (c *Controller) Busy() bool {
	return c.busy
}

// History returns the controller's roll history.
func (c *Controller) History() *History {
	return c.history
}

// RequestRoll starts a roll. Requests made while a roll is in flight are
// silently dropped and RequestRoll returns false. Once started, a roll always
// runs to completion; there is no cancellation path.
func (c *Controller) RequestRoll() bool {
	if c.busy {
		return false
	}
	c.busy = true
	c.presenter.SetTriggerEnabled(false)
	c.presenter.PlayRollSound()

	final := c.source()
	c.step(final, c.steps)
	return true
}

// step emits one animation frame and re-arms itself until the countdown is
// exhausted, then commits the final outcome. The commit order is fixed:
// final face, history append, HistoryChanged, busy cleared, trigger enabled.
func (c *Controller) step(final Face, remaining int) {
	if remaining > 0 {
		c.presenter.RenderFace(c.source())
		c.schedule(c.interval, func() {
			c.step(final, remaining-1)
		})
		return
	}

	c.presenter.RenderFace(final)
	c.history.Append(final)
	c.presenter.HistoryChanged(c.history.Recent(c.displayLimit))
	c.busy = false
	c.presenter.SetTriggerEnabled(true)
}
