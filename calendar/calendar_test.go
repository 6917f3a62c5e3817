package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func constant(state string) Factory {
	return func(Options, language.Tag) Calendar {
		return CalendarFunc(func(time.Time) (Result, error) {
			return Result{State: state}, nil
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Run("Order And Lookup", func(t *testing.T) {
		sut, err := NewRegistry(
			Descriptor{ID: "b", New: constant("B")},
			Descriptor{ID: "a", New: constant("A")},
		)
		require.NoError(t, err)

		assert.Equal(t, []string{"b", "a"}, sut.IDs())

		d, ok := sut.Lookup("a")
		require.True(t, ok)

		res, err := d.New(nil, language.English).Convert(time.Time{})
		require.NoError(t, err)
		assert.Equal(t, "A", res.State)

		_, ok = sut.Lookup("c")
		assert.False(t, ok)
		assert.Len(t, sut.All(), 2)
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := NewRegistry(
			Descriptor{ID: "a", New: constant("A")},
			Descriptor{ID: "a", New: constant("A")},
		)

		require.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := NewRegistry(Descriptor{ID: "a"}, Descriptor{New: constant("A")})

		require.ErrorIs(t, err, ErrInvalidDescriptor)
	})
}

func TestFixedClock(t *testing.T) {
	want := time.Date(2012, time.December, 21, 0, 0, 0, 0, time.UTC)

	require.Equal(t, want, FixedClock{T: want}.Now())
}
