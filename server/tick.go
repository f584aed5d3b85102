package server

import (
	"context"
	"errors"
	"math"
	"time"
)

const (
	tpsSampleSize = 20
	// tpsWarningRatio is the share of the configured tick rate below which a
	// warning is logged.
	tpsWarningRatio = 0.95
)

// Run starts the tick loop of the Server and blocks until ctx is cancelled or
// the Server is closed. The ready event is dispatched on the first tick. Run
// returns an error if it is called more than once.
func (srv *Server) Run(ctx context.Context) error {
	select {
	case <-srv.closing:
		return ErrClosed
	default:
	}
	if !srv.running.CompareAndSwap(false, true) {
		return errors.New("run server: already running")
	}
	defer close(srv.done)

	now := time.Now()
	srv.started.Store(&now)
	srv.Exec(func() { srv.Ready() })

	tc := time.NewTicker(time.Second / time.Duration(srv.conf.TickRate))
	defer tc.Stop()
	lastTick := time.Now()
	var (
		durationSum time.Duration
		ticksCount  int
		warned      bool
	)
	for {
		select {
		case <-tc.C:
			tickStart := time.Now()
			duration := tickStart.Sub(lastTick)
			lastTick = tickStart
			if duration > 0 {
				durationSum += duration
				ticksCount++
				if ticksCount >= tpsSampleSize {
					tps := 1.0 / (durationSum / time.Duration(ticksCount)).Seconds()
					srv.tps.Store(math.Float64bits(tps))
					if tps < float64(srv.conf.TickRate)*tpsWarningRatio {
						if !warned {
							srv.log.Warn("TPS dropped below threshold.", "tps", tps)
							warned = true
						}
					} else {
						warned = false
					}
					durationSum, ticksCount = 0, 0
				}
			}
			srv.Tick()
		case <-ctx.Done():
			return nil
		case <-srv.closing:
			return nil
		}
	}
}

// Tick performs a single tick: functions passed to Exec run first, after
// which the tasks due in the scheduler are run. Tick is called by Run and must
// not be called while Run is running.
func (srv *Server) Tick() {
	for n := len(srv.queue); n > 0; n-- {
		j := <-srv.queue
		j.fn()
		close(j.done)
	}
	srv.sched.Tick()
}
