package scheduler

import "github.com/alexanderramin/lessonslot/internal/domain"

// Schedule builds the month's grid and fills it from the roster. It is a
// pure function of its inputs: students are not mutated and nothing outside
// the returned result is touched, so concurrent calls are independent.
func Schedule(year, month int, students []domain.Student) (domain.ScheduleResult, error) {
	grid, err := BuildCalendar(year, month)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	byID := domain.IndexByID(students)
	grid, unassigned := Assign(Prioritize(students), grid, byID)

	return Finalize(grid, unassigned), nil
}
