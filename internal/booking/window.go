package booking

import (
	"context"
	"fmt"
	"time"

	"mwell-store/internal/model"
)

// EditWindow is how long after creation an appointment may be changed.
const EditWindow = 30 * time.Minute

const editWindowSeconds = int(EditWindow / time.Second)

// SecondsRemaining returns the whole seconds left in the edit window,
// clamped to [0, 1800]. A now before createdAt counts as zero elapsed.
func SecondsRemaining(createdAt, now time.Time) int {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		return editWindowSeconds
	}
	remaining := editWindowSeconds - int(elapsed/time.Second)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanEdit reports whether the edit window is still open.
func CanEdit(createdAt, now time.Time) bool {
	return SecondsRemaining(createdAt, now) > 0
}

// CheckEditable fails with model.ErrEditWindowClosed once the edit window
// measured from createdAt has passed. The API and the CLI both gate updates
// on it.
func CheckEditable(createdAt, now time.Time) error {
	if !CanEdit(createdAt, now) {
		return model.ErrEditWindowClosed
	}
	return nil
}

// FormatRemaining renders seconds as minutes and zero-padded seconds, for
// example 1799 as "29:59". Negative input renders as "0:00".
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Countdown emits the seconds remaining immediately and then on every tick,
// recomputed from the clock each time. The channel closes after 0 has been
// sent or when ctx is done.
func Countdown(ctx context.Context, createdAt time.Time, clock func() time.Time, tick time.Duration) <-chan int {
	if clock == nil {
		clock = time.Now
	}
	if tick <= 0 {
		tick = time.Second
	}

	out := make(chan int)
	go func() {
		defer close(out)

		ticker := time.NewTicker(tick)
		defer ticker.Stop()

		for {
			remaining := SecondsRemaining(createdAt, clock())
			select {
			case out <- remaining:
			case <-ctx.Done():
				return
			}
			if remaining == 0 {
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
