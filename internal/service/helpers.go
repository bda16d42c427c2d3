package service

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonslot/internal/domain"
)

// formatValidationErrors folds errs into one error wrapping
// domain.ErrInvalidInput, one problem per line.
func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, b.String())
}
