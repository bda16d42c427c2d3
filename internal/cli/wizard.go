package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonslot/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// lessonslotHuhTheme returns a huh theme using the formatter palette.
func lessonslotHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// studentFields are the raw text values collected by the add-student form.
type studentFields struct {
	ID   string
	Name string
	Days string
	NG   string
}

// wizardStudent creates a huh form for the fields of a new student. ID is
// prefilled with the suggested next id.
func wizardStudent(f *studentFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Student ID").
				Description("Leave as suggested or enter your own").
				Value(&f.ID),
			huh.NewInput().
				Title("Name").
				Value(&f.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Preferred days").
				Description("Days of month in order of preference, e.g. 1,5,10").
				Placeholder("1,5,10").
				Value(&f.Days).
				Validate(func(s string) error {
					_, err := parseDays(s)
					return err
				}),
			huh.NewInput().
				Title("NG students").
				Description("IDs that must not share a slot, e.g. 2,3").
				Value(&f.NG),
		),
	).WithTheme(lessonslotHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(lessonslotHuhTheme()).WithShowHelp(false)
}
