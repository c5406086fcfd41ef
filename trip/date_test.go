package trip

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	assert.NoError(t, err)
	assert.Equal(t, d.String(), "2025-06-01")
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "01-06-2025", "2025/06/01", "2025-13-01", "yesterday"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "expected %q to be rejected", input)
	}
}

func TestDate_Equal(t *testing.T) {
	a := NewDate(2025, time.June, 1)
	b := NewDate(2025, time.June, 1)
	c := NewDate(2025, time.June, 2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Before(c))
	assert.False(t, c.Before(a))
}

// TestDate_Prev verifies stepping backwards across month and year
// boundaries, which the rate provider relies on for its fallback.
func TestDate_Prev(t *testing.T) {
	assert.Equal(t, NewDate(2025, time.June, 2).Prev().String(), "2025-06-01")
	assert.Equal(t, NewDate(2025, time.June, 1).Prev().String(), "2025-05-31")
	assert.Equal(t, NewDate(2025, time.January, 1).Prev().String(), "2024-12-31")
	assert.Equal(t, NewDate(2024, time.March, 1).Prev().String(), "2024-02-29")
}

func TestDate_IsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, NewDate(2025, time.June, 1).IsZero())
}
