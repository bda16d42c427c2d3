package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lessonslot/internal/scheduler"
	"github.com/spf13/pflag"
)

// monthValue is a pflag.Value holding a YYYY-MM month.
type monthValue struct {
	year  int
	month int
	set   bool
}

var _ pflag.Value = (*monthValue)(nil)

func (m *monthValue) String() string {
	if !m.set {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", m.year, m.month)
}

func (m *monthValue) Set(s string) error {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM, e.g. 2026-04")
	}
	if err := scheduler.ValidateMonth(t.Year(), int(t.Month())); err != nil {
		return err
	}
	m.year, m.month, m.set = t.Year(), int(t.Month()), true
	return nil
}

func (m *monthValue) Type() string {
	return "YYYY-MM"
}
