package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Equal(t, "a1b2c3d4", got)

	// Short IDs are returned as-is
	assert.Equal(t, "short", TruncID("short"))
}

func TestJoinDays(t *testing.T) {
	assert.Equal(t, "1, 5, 10", JoinDays([]int{1, 5, 10}))
	assert.Equal(t, "--", JoinDays(nil))
	assert.Equal(t, "--", JoinDays([]int{}))
}

func TestJoinIDs(t *testing.T) {
	assert.Equal(t, "2, S-3", JoinIDs([]string{"2", "S-3"}))
	assert.Equal(t, "--", JoinIDs(nil))
}

func TestGroupWeeks_Helpers(t *testing.T) {
	// April 2026 starts on a Wednesday.
	dates := []string{
		"2026-04-01", "2026-04-02", "2026-04-03",
		"2026-04-06", "2026-04-07",
		"not-a-date",
		"2026-04-13",
	}
	got := GroupWeeks(dates)
	assert.Equal(t, [][]string{
		{"2026-04-01", "2026-04-02", "2026-04-03"},
		{"2026-04-06", "2026-04-07"},
		{"2026-04-13"},
	}, got)

	assert.Empty(t, GroupWeeks(nil))
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Wed 04/01", dayLabel("2026-04-01"))
	assert.Equal(t, "bogus", dayLabel("bogus"))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("test", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	// Should contain rounded border characters
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}

func TestHeaderUnderlinesUppercasedText(t *testing.T) {
	got := stripANSI(Header("Week 1"))
	assert.Equal(t, "WEEK 1\n──────", got)
}

func TestRenderTable(t *testing.T) {
	got := stripANSI(RenderTable([]string{"ID", "NAME"}, [][]string{{"1", "Taro"}, {"22", "Hanako"}}))
	assert.Contains(t, got, "ID")
	assert.Contains(t, got, "Hanako")
	assert.Contains(t, got, "22")
}
