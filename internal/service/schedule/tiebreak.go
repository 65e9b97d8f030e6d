package schedule

import "math/rand"

// TieBreaker decides the ordering of otherwise-equal rest-day candidates.
// The default keeps the chronological order, making generation reproducible;
// the seeded variant restores shuffled candidate ordering for installations
// that want spread-out rest days over reproducibility.
type TieBreaker interface {
	Shuffle(indices []int)
}

type stableOrder struct{}

func StableOrder() TieBreaker {
	return stableOrder{}
}

func (stableOrder) Shuffle([]int) {}

type seededRandom struct {
	rng *rand.Rand
}

func SeededRandom(seed int64) TieBreaker {
	return &seededRandom{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededRandom) Shuffle(indices []int) {
	s.rng.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
}
