package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// IsDead reports whether a bird with the given bounds has died.
// The bird dies when its bottom edge reaches the floor, when it has left the
// field entirely through the top, or when it overlaps any obstacle.
// Flying partially above the top edge is allowed.
func IsDead(bird core.Box, fieldH float64, obstacles []core.Box) bool {
	if bird.Bottom() >= fieldH || bird.Bottom() <= 0 {
		return true
	}
	for _, o := range obstacles {
		if bird.Overlaps(o) {
			return true
		}
	}
	return false
}
