package selection

import (
	"fmt"
	"time"

	"github.com/okian/fieldmap/internal/domain/model"
)

// DegreeRanker ranks degree strings on a fixed level scale; higher is more
// advanced. Unranked degree strings rank lowest.
type DegreeRanker interface {
	DegreeLevel(degree string) int
}

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithClock overrides the current-year source, used to measure open-ended
// durations. Intended for tests.
func WithClock(now func() int) Option {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// Resolver selects entries from repeated resume sections.
type Resolver struct {
	ranker DegreeRanker
	now    func() int
}

// NewResolver creates a selection resolver. The ranker backs the
// highest_degree strategy.
func NewResolver(ranker DegreeRanker, opts ...Option) *Resolver {
	r := &Resolver{
		ranker: ranker,
		now:    func() int { return time.Now().Year() },
	}

	// Apply all options
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// span is the strategy-relevant shape of one entry.
type span struct {
	start    int
	end      int // set to "now" for open-ended entries
	hasStart bool
	open     bool
	level    int // degree level; only meaningful for education
}

// Education selects an education entry. Returns (-1, nil, nil) when entries
// is empty and no explicit index is given.
func (r *Resolver) Education(entries []model.EducationEntry, strategy Strategy, explicit *int) (int, *model.EducationEntry, error) {
	idx, err := r.pick(len(entries), strategy, explicit, func(i int) span {
		return r.educationSpan(entries[i])
	})
	if err != nil || idx < 0 {
		return -1, nil, err
	}
	return idx, &entries[idx], nil
}

// Experience selects an experience entry. The highest_degree strategy does
// not apply to experience and falls back to most_recent.
func (r *Resolver) Experience(entries []model.ExperienceEntry, strategy Strategy, explicit *int) (int, *model.ExperienceEntry, error) {
	if strategy == HighestDegree {
		strategy = MostRecent
	}
	idx, err := r.pick(len(entries), strategy, explicit, func(i int) span {
		return r.experienceSpan(entries[i])
	})
	if err != nil || idx < 0 {
		return -1, nil, err
	}
	return idx, &entries[idx], nil
}

// Projects selects a project entry. Projects carry no dates: longest picks
// the longest description, every other strategy picks the first entry.
func (r *Resolver) Projects(entries []model.ProjectEntry, strategy Strategy, explicit *int) (int, *model.ProjectEntry, error) {
	if explicit != nil {
		if *explicit < 0 || *explicit >= len(entries) {
			return -1, nil, fmt.Errorf("%w: index %d with %d entries", ErrIndexOutOfRange, *explicit, len(entries))
		}
		return *explicit, &entries[*explicit], nil
	}
	if len(entries) == 0 {
		return -1, nil, nil
	}

	best := 0
	if strategy == Longest {
		for i := 1; i < len(entries); i++ {
			if len(entries[i].Description) > len(entries[best].Description) {
				best = i
			}
		}
	}
	return best, &entries[best], nil
}

// pick applies the explicit-index override and otherwise scans for the best
// entry under the strategy. Earlier entries win full ties, which keeps the
// result independent of how the scan is ordered.
func (r *Resolver) pick(n int, strategy Strategy, explicit *int, spanAt func(int) span) (int, error) {
	if explicit != nil {
		if *explicit < 0 || *explicit >= n {
			return -1, fmt.Errorf("%w: index %d with %d entries", ErrIndexOutOfRange, *explicit, n)
		}
		return *explicit, nil
	}
	if n == 0 {
		return -1, nil
	}

	better := betterFunc(strategy)
	best := 0
	bestSpan := spanAt(0)
	for i := 1; i < n; i++ {
		s := spanAt(i)
		if better(s, bestSpan) {
			best, bestSpan = i, s
		}
	}
	return best, nil
}

// betterFunc returns the strict "a beats b" ordering for a strategy.
func betterFunc(strategy Strategy) func(a, b span) bool {
	switch strategy {
	case Longest:
		return func(a, b span) bool {
			da, db := a.duration(), b.duration()
			if da != db {
				return da > db
			}
			return moreRecent(a, b)
		}
	case HighestDegree:
		return func(a, b span) bool {
			if a.level != b.level {
				return a.level > b.level
			}
			return moreRecent(a, b)
		}
	default:
		return moreRecent
	}
}

// moreRecent orders open-ended entries before all dated entries, then by
// descending end year.
func moreRecent(a, b span) bool {
	if a.open != b.open {
		return a.open
	}
	if a.open {
		return false // both open: earlier entry wins
	}
	return a.end > b.end
}

// duration is end − start; entries without a parseable start sort last.
func (s span) duration() int {
	if !s.hasStart {
		return -1
	}
	return s.end - s.start
}

func (r *Resolver) educationSpan(e model.EducationEntry) span {
	s := span{}
	s.start, s.hasStart = ParseYear(e.StartYear)
	end, ok := ParseYear(e.EndYear)
	if e.Current || !ok {
		s.open = true
		s.end = r.now()
	} else {
		s.end = end
	}
	if r.ranker != nil {
		s.level = r.ranker.DegreeLevel(e.Degree)
	}
	return s
}

func (r *Resolver) experienceSpan(e model.ExperienceEntry) span {
	s := span{}
	s.start, s.hasStart = ParseYear(e.StartYear)
	end, ok := ParseYear(e.EndYear)
	if e.Current || !ok {
		s.open = true
		s.end = r.now()
	} else {
		s.end = end
	}
	return s
}
