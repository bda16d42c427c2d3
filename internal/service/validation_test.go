package service

import (
	"testing"

	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStudent_CollectsEveryProblem(t *testing.T) {
	errs := validateStudent(&domain.Student{ID: "4", PreferredDays: []int{0, 12, 40}, NGWith: []string{"4"}})

	require.Len(t, errs, 4)
	assert.EqualError(t, errs[0], "name is required")
	assert.EqualError(t, errs[1], "preferred day 0 is outside 1..31")
	assert.EqualError(t, errs[2], "preferred day 40 is outside 1..31")
	assert.EqualError(t, errs[3], "student cannot be NG with itself")
}

func TestValidateStudent_Valid(t *testing.T) {
	assert.Empty(t, validateStudent(&domain.Student{Name: "Taro", PreferredDays: []int{1, 31}}))
	assert.Empty(t, validateStudent(&domain.Student{Name: "Sora"}))
}

func TestFormatValidationErrors(t *testing.T) {
	err := formatValidationErrors(validateStudent(&domain.Student{PreferredDays: []int{32}}))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "validation failed (2 errors)")
	assert.Contains(t, err.Error(), "\n  - name is required")
}

func TestValidateStudent_RejectsCSVSeparators(t *testing.T) {
	tests := []struct {
		name    string
		student domain.Student
		want    string
	}{
		{"comma in name", domain.Student{Name: "Sato, Hanako"}, `name "Sato, Hanako" must not contain`},
		{"quote in name", domain.Student{Name: `Ken "KJ" Ito`}, "must not contain a comma or double quote"},
		{"comma in id", domain.Student{ID: "1,2", Name: "Aoi"}, `id "1,2" must not contain`},
		{"semicolon in id", domain.Student{ID: "1;2", Name: "Aoi"}, `id "1;2" must not contain`},
		{"semicolon in NG id", domain.Student{Name: "Aoi", NGWith: []string{"2;3"}}, `NG id "2;3" must not contain`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.student
			errs := validateStudent(&s)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Error(), tt.want)
		})
	}
}

func TestValidateStudent_AllowsOtherPunctuation(t *testing.T) {
	assert.Empty(t, validateStudent(&domain.Student{ID: "S-7", Name: "O'Brien-Sato (Jr.)", NGWith: []string{"S-8"}}))
	assert.Empty(t, validateStudent(&domain.Student{Name: "佐藤 花子; Hanako"}))
}
