package scheduler

import (
	"github.com/noah-isme/employee-availability-api/internal/models"
)

// IsSubset reports whether sub lies within free, boundaries included.
// A zero-length sub is accepted. Checks run in order and stop at the first
// failing one, so a malformed endpoint only surfaces if it is reached.
func IsSubset(free, sub models.Interval) (bool, error) {
	checks := []models.Interval{
		sub,
		{Start: free.Start, End: sub.Start},
		{Start: sub.End, End: free.End},
		// implied by the two above; kept so every endpoint pairing is format checked
		{Start: free.Start, End: sub.End},
		{Start: sub.Start, End: free.End},
	}
	for _, c := range checks {
		ok, err := IsValidTimeslot(c, true)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}
