package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var errBroken = errors.New("broken")

func TestSafe(t *testing.T) {
	now := time.Date(2024, time.March, 14, 15, 9, 26, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		res, err := Safe(CalendarFunc(func(time.Time) (Result, error) {
			return Result{State: "ok"}, nil
		}), now)

		require.NoError(t, err)
		assert.Equal(t, "ok", res.State)
		assert.NotNil(t, res.Attributes, "attributes should never be nil")
		assert.False(t, res.IsError())
	})

	t.Run("Error", func(t *testing.T) {
		res, err := Safe(CalendarFunc(func(time.Time) (Result, error) {
			return Result{State: "partial"}, errBroken
		}), now)

		require.ErrorIs(t, err, errBroken)
		assert.True(t, res.IsError())
		assert.Equal(t, ErrorState, res.State)

		msg, _ := res.Attributes.Get(ErrorKey)
		assert.Equal(t, "broken", msg)
	})

	t.Run("Panic", func(t *testing.T) {
		var table []string

		res, err := Safe(CalendarFunc(func(time.Time) (Result, error) {
			return Result{State: table[3]}, nil
		}), now)

		require.ErrorIs(t, err, ErrPanic)
		assert.True(t, res.IsError())
	})

	t.Run("Empty Name Table", func(t *testing.T) {
		months := Names{}

		res, err := Safe(CalendarFunc(func(instant time.Time) (Result, error) {
			m, err := months.At(language.English, int(instant.Month())-1)
			if err != nil {
				return Result{}, err
			}

			return Result{State: m}, nil
		}), now)

		require.ErrorIs(t, err, ErrTableIndex)
		assert.True(t, res.IsError())
	})

	t.Run("Nil Converter", func(t *testing.T) {
		res, err := Safe(nil, now)

		require.Error(t, err)
		assert.True(t, res.IsError())
	})
}
