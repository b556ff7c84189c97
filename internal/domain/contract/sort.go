package contract

import (
	"slices"
	"time"
)

// StatusSort orders ongoing contracts by how close their start is to now,
// followed by every other contract in its original relative order.
func StatusSort(contracts []*Contract, now time.Time) []*Contract {
	out := slices.Clone(contracts)
	slices.SortStableFunc(out, func(a, b *Contract) int {
		aOngoing, bOngoing := a.IsOngoing(), b.IsOngoing()
		switch {
		case aOngoing && !bOngoing:
			return -1
		case !aOngoing && bOngoing:
			return 1
		case !aOngoing && !bOngoing:
			return 0
		}
		da, db := distance(a.startDate, now), distance(b.startDate, now)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})
	return out
}

func distance(t, now time.Time) time.Duration {
	d := t.Sub(now)
	if d < 0 {
		return -d
	}
	return d
}
