package instalens

import (
	"github.com/instalens/instalens/types"
)

// Analysis holds the three derived relationship lists, each sorted
// lexicographically so report output is deterministic.
type Analysis struct {
	// NotFollowingBack are accounts the user follows that do not follow back
	NotFollowingBack []string

	// UserNotFollowingBack are accounts following the user that the user
	// does not follow back
	UserNotFollowingBack []string

	// Mutual are accounts present in both lists
	Mutual []string
}

// Analyze compares the followers and following sets. Direction matters:
// the first argument is who follows the user, the second is who the user
// follows. The three result lists partition the union of both inputs.
func Analyze(followers, following types.Identifiers) *Analysis {
	return &Analysis{
		NotFollowingBack:     following.Difference(followers).Sorted(),
		UserNotFollowingBack: followers.Difference(following).Sorted(),
		Mutual:               followers.Intersection(following).Sorted(),
	}
}

// Empty returns true if the analysis derives from no data at all
func (a *Analysis) Empty() bool {
	return len(a.NotFollowingBack) == 0 &&
		len(a.UserNotFollowingBack) == 0 &&
		len(a.Mutual) == 0
}
