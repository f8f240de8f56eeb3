package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
}

// RunHeadless runs a session against an off-screen surface of the
// configured size with no input. It stops after cfg.Ticks ticks (0 = run
// until ctx is done) or when the step returns ErrQuit.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, opts Options, cfg HeadlessConfig) error {
	opts = opts.withDefaults()
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHostHAL(opts, nullInput{})
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.clock.step()
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
