package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid ISO date", func(t *testing.T) {
		d, err := ParseDate("2025-06-24")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-24", d.String())
		assert.False(t, d.IsZero())
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		for _, input := range []string{"2025-02-30", "24-06-2025", "2025/06/24", "not-a-date", ""} {
			_, err := ParseDate(input)
			assert.ErrorIs(t, err, ErrInvalidDate, "input %q", input)
		}
	})
}

func TestDateJSON(t *testing.T) {
	t.Run("marshals as quoted ISO date", func(t *testing.T) {
		data, err := json.Marshal(NewDate(2025, time.June, 24))
		require.NoError(t, err)
		assert.Equal(t, `"2025-06-24"`, string(data))
	})

	t.Run("unmarshal rejects non-string values", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`20250624`), &d))
	})

	t.Run("unmarshal rejects date-time strings", func(t *testing.T) {
		var d Date
		assert.ErrorIs(t, json.Unmarshal([]byte(`"2025-06-24T10:00:00Z"`), &d), ErrInvalidDate)
	})
}

func TestDateScan(t *testing.T) {
	t.Run("scans time.Time from a DATE column", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(time.Date(2025, time.June, 24, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, "2025-06-24", d.String())
	})

	t.Run("drops any time-of-day component", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(time.Date(2025, time.June, 24, 15, 4, 5, 0, time.UTC)))
		assert.Equal(t, "2025-06-24", d.String())
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		var d Date
		assert.Error(t, d.Scan(42))
	})
}
