package importer

import (
	"fmt"

	"github.com/alexanderramin/lessonslot/internal/domain"
)

// ValidateRoster checks a parsed roster for problems the scheduler
// tolerates but an operator probably wants to see. It returns all findings;
// none of them block scheduling.
func ValidateRoster(students []domain.Student) []error {
	var errs []error

	known := make(map[string]bool, len(students))
	for _, s := range students {
		if known[s.ID] {
			errs = append(errs, fmt.Errorf("student %q: duplicate id", s.ID))
		}
		known[s.ID] = true
	}

	for _, s := range students {
		for _, d := range s.PreferredDays {
			if d < 1 || d > 31 {
				errs = append(errs, fmt.Errorf("student %q: preferred day %d is not a day of month", s.ID, d))
			}
		}
		if len(s.PreferredDays) == 0 {
			errs = append(errs, fmt.Errorf("student %q: no preferred days, will not be scheduled", s.ID))
		}
		for _, ng := range s.NGWith {
			switch {
			case ng == s.ID:
				errs = append(errs, fmt.Errorf("student %q: lists itself as NG", s.ID))
			case !known[ng]:
				errs = append(errs, fmt.Errorf("student %q: NG id %q is not in the roster", s.ID, ng))
			}
		}
	}

	return errs
}
