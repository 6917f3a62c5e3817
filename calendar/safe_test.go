package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/lunisolar"
)

func TestSafeMisconfiguredConverter(t *testing.T) {
	now := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Known Names", func(t *testing.T) {
		res, err := calendar.Safe(lunisolar.Egyptian{Names: lunisolar.EgyptianNamesGreek}, now)
		require.NoError(t, err)
		assert.False(t, res.IsError())
	})

	t.Run("Unknown Names", func(t *testing.T) {
		res, err := calendar.Safe(lunisolar.Egyptian{Names: "bogus"}, now)
		require.ErrorIs(t, err, calendar.ErrTableIndex)

		assert.Equal(t, calendar.ErrorState, res.State)
		msg, ok := res.Attributes.Get(calendar.ErrorKey)
		require.True(t, ok)
		assert.Contains(t, msg, "out of range")
	})
}
