package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// studentInput carries the rules for a student entered by hand. Imported
// rows are tolerated as they are and only produce roster warnings.
//
// Commas and quotes would split a name or id when the roster CSV is read
// back, and ';' separates ids in NG lists. 0x2C is validator's escape for ','.
type studentInput struct {
	ID            string   `validate:"omitempty,excludesall=0x2C;\""`
	Name          string   `validate:"required,excludesall=0x2C\""`
	PreferredDays []int    `validate:"dive,min=1,max=31"`
	NGWith        []string `validate:"dive,excludesall=0x2C;\""`
}

func validateStudent(st *domain.Student) []error {
	var errs []error

	in := studentInput{ID: st.ID, Name: st.Name, PreferredDays: st.PreferredDays, NGWith: st.NGWith}
	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return []error{err}
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fieldError(fe))
		}
	}

	if st.ID != "" && st.HasNGWith(st.ID) {
		errs = append(errs, fmt.Errorf("student cannot be NG with itself"))
	}
	return errs
}

func fieldError(fe validator.FieldError) error {
	field := fe.Field()
	switch {
	case field == "Name" && fe.Tag() == "required":
		return fmt.Errorf("name is required")
	case field == "Name":
		return fmt.Errorf("name %q must not contain a comma or double quote", fe.Value())
	case field == "ID":
		return fmt.Errorf("id %q must not contain a comma, semicolon or double quote", fe.Value())
	case strings.HasPrefix(field, "PreferredDays"):
		return fmt.Errorf("preferred day %v is outside 1..31", fe.Value())
	case strings.HasPrefix(field, "NGWith"):
		return fmt.Errorf("NG id %q must not contain a comma, semicolon or double quote", fe.Value())
	default:
		return fmt.Errorf("%s failed %s", field, fe.Tag())
	}
}
