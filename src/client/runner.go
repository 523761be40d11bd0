package client

import (
	"context"
	"sync"
	"time"

	"github.com/stuchain/UoM-Cryptography-sub001/src/phases"
)

// Listener receives run lifecycle events. PhaseCompleted / PhaseFailed fire
// after the matching status change and must finish any rendering work before
// returning: RunAll treats their return as the phase being fully done.
type Listener interface {
	PhaseStatusChanged(n int, st phases.Status)
	PhaseCompleted(n int, res *phases.Result)
	PhaseFailed(n int, msg string)
}

// DefaultPause is the pacing delay between phases in RunAll. It is a
// pedagogical pause, not a correctness requirement.
const DefaultPause = 500 * time.Millisecond

// Runner owns the per-phase statuses and drives phase execution: status to
// running, one fetch, then a deterministic transition to success or error.
// Failures never propagate past the phase boundary.
type Runner struct {
	client   *Client
	listener Listener
	// Pause separates consecutive phases in RunAll.
	Pause time.Duration

	mu     sync.Mutex
	status [phases.Count]phases.Status
}

// NewRunner returns a runner with all phases pending.
func NewRunner(c *Client, l Listener) *Runner {
	return &Runner{client: c, listener: l, Pause: DefaultPause}
}

// Status returns the current status of phase n.
func (r *Runner) Status(n int) phases.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n < 1 || n > phases.Count {
		return phases.StatusPending
	}
	return r.status[n-1]
}

func (r *Runner) setStatus(n int, st phases.Status) {
	r.mu.Lock()
	r.status[n-1] = st
	r.mu.Unlock()
	if r.listener != nil {
		r.listener.PhaseStatusChanged(n, st)
	}
}

// RunPhase executes phase n once: running, a single backend request, then
// success (routing the result to the listener) or error. Transport failures
// and backend failures surface identically as an error outcome carrying the
// failure message. The returned status is terminal for this run.
func (r *Runner) RunPhase(ctx context.Context, n int) phases.Status {
	r.setStatus(n, phases.StatusRunning)
	Infof("phase %d started", n)

	res, err := r.client.FetchPhase(ctx, n)
	if err != nil {
		Errorf("phase %d: %v", n, err)
		r.setStatus(n, phases.StatusError)
		if r.listener != nil {
			r.listener.PhaseFailed(n, err.Error())
		}
		return phases.StatusError
	}
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = "Unknown error"
		}
		Warnf("phase %d reported failure: %s", n, msg)
		r.setStatus(n, phases.StatusError)
		if r.listener != nil {
			r.listener.PhaseFailed(n, msg)
		}
		return phases.StatusError
	}

	r.setStatus(n, phases.StatusSuccess)
	if r.listener != nil {
		r.listener.PhaseCompleted(n, res)
	}
	Infof("phase %d succeeded", n)
	return phases.StatusSuccess
}

// RunAll executes phases 1..Count strictly sequentially: each phase completes
// fully, listener work included, before the next starts, with a pause between
// phases. A phase ending in error does not abort the sequence; the phases
// are demonstrations, not dependent transactions. Returns early only when
// ctx is cancelled.
func (r *Runner) RunAll(ctx context.Context) error {
	for n := 1; n <= phases.Count; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.RunPhase(ctx, n)
		if n < phases.Count {
			if err := sleepOrDone(ctx, r.Pause); err != nil {
				return err
			}
		}
	}
	return nil
}

func sleepOrDone(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
