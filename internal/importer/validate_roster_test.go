package importer

import (
	"testing"

	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoster_Clean(t *testing.T) {
	errs := ValidateRoster([]domain.Student{
		{ID: "1", PreferredDays: []int{1}, NGWith: []string{"2"}},
		{ID: "2", PreferredDays: []int{31}},
	})
	assert.Empty(t, errs)
}

func TestValidateRoster_CollectsAllProblems(t *testing.T) {
	errs := ValidateRoster([]domain.Student{
		{ID: "1", PreferredDays: []int{0, 32}, NGWith: []string{"1", "ghost"}},
		{ID: "1", PreferredDays: []int{4}},
		{ID: "2"},
	})

	require.Len(t, errs, 6)
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	assert.Contains(t, msgs, `student "1": duplicate id`)
	assert.Contains(t, msgs, `student "1": preferred day 0 is not a day of month`)
	assert.Contains(t, msgs, `student "1": preferred day 32 is not a day of month`)
	assert.Contains(t, msgs, `student "1": lists itself as NG`)
	assert.Contains(t, msgs, `student "1": NG id "ghost" is not in the roster`)
	assert.Contains(t, msgs, `student "2": no preferred days, will not be scheduled`)
}
