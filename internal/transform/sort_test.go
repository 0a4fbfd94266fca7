package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dated struct {
	name     string
	primary  string
	fallback string
}

func sortNames(items []dated) []string {
	SortByEffectiveDate(items, func(d dated) (string, string) { return d.primary, d.fallback })
	names := make([]string, len(items))
	for i, d := range items {
		names[i] = d.name
	}
	return names
}

func TestSortByEffectiveDateNewestFirst(t *testing.T) {
	items := []dated{
		{name: "old", primary: "2024-01-01T00:00:00Z"},
		{name: "new", primary: "2025-06-01T00:00:00Z"},
		{name: "mid", primary: "2025-01-01T00:00:00Z"},
	}
	assert.Equal(t, []string{"new", "mid", "old"}, sortNames(items))
}

func TestSortByEffectiveDateFallback(t *testing.T) {
	items := []dated{
		{name: "a", primary: "", fallback: "2025-05-01T00:00:00Z"},
		{name: "b", primary: "2025-06-01T00:00:00Z", fallback: "2020-01-01T00:00:00Z"},
	}
	assert.Equal(t, []string{"b", "a"}, sortNames(items))
}

func TestSortByEffectiveDateUnparsableSortsOldest(t *testing.T) {
	items := []dated{
		{name: "garbage", primary: "not-a-date"},
		{name: "dated", primary: "2024-01-01"},
	}
	assert.Equal(t, []string{"dated", "garbage"}, sortNames(items))
}

func TestSortByEffectiveDateStable(t *testing.T) {
	items := []dated{
		{name: "first", primary: "2025-01-01"},
		{name: "second", primary: "2025-01-01"},
	}
	assert.Equal(t, []string{"first", "second"}, sortNames(items))
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{
		"2025-01-20T10:30:00Z",
		"2025-01-20T10:30:00",
		"2025-01-20",
		"2025-01",
	} {
		got, ok := ParseDate(s)
		require.True(t, ok, s)
		assert.Equal(t, 2025, got.Year())
	}

	_, ok := ParseDate("20 Jan 2025")
	assert.False(t, ok)
}
