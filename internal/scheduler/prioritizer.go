package scheduler

import (
	"sort"

	"github.com/alexanderramin/lessonslot/internal/domain"
)

// noPreferenceRank stands in for the preference count of a student with no
// preferred days so that such students sort after everyone else.
const noPreferenceRank = 999

// preferenceRank returns the sort key used by Prioritize.
func preferenceRank(s domain.Student) int {
	if len(s.PreferredDays) == 0 {
		return noPreferenceRank
	}
	return len(s.PreferredDays)
}

// Prioritize returns the roster ordered by placement difficulty: fewest
// preferred days first, students with none last. Ties keep input order.
// The input slice is left untouched.
func Prioritize(students []domain.Student) []domain.Student {
	out := make([]domain.Student, len(students))
	copy(out, students)
	sort.SliceStable(out, func(i, j int) bool {
		return preferenceRank(out[i]) < preferenceRank(out[j])
	})
	return out
}
