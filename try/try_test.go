package try

import (
	"errors"
	"strconv"
	"testing"

	"github.com/amp-labs/amp-collections/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestSuccessAndFailure(t *testing.T) {
	t.Parallel()

	ok := Success(3)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())

	v, err := ok.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	bad := Failure[int](errBoom)
	assert.True(t, bad.IsFailure())

	v, err = bad.Get()
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, v)
	assert.Equal(t, 7, bad.GetOrElse(7))
	assert.Equal(t, 3, ok.GetOrElse(7))
}

func TestOf(t *testing.T) {
	t.Parallel()

	t.Run("plain value is a success", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Of("x").IsSuccess())
	})

	t.Run("error-shaped value is a failure", func(t *testing.T) {
		t.Parallel()

		res := Of[any](errBoom)
		require.True(t, res.IsFailure())
		require.ErrorIs(t, res.Error, errBoom)
	})

	t.Run("nil error is a success", func(t *testing.T) {
		t.Parallel()

		var err error

		assert.True(t, Of(err).IsSuccess())
	})
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Success(1).GetOrPanic())
	assert.PanicsWithError(t, "boom", func() {
		Failure[int](errBoom).GetOrPanic()
	})
}

func TestOptionConversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, optional.Some(1), Success(1).ToOption())
	assert.True(t, Failure[int](errBoom).ToOption().Empty())

	assert.Equal(t, Success(2), FromOption(optional.Some(2), errBoom))
	require.ErrorIs(t, FromOption(optional.None[int](), errBoom).Error, errBoom)
}

func TestMap(t *testing.T) {
	t.Parallel()

	parse := func(s string) (int, error) { return strconv.Atoi(s) }

	assert.Equal(t, Success(12), Map(Success("12"), parse))
	assert.True(t, Map(Success("x"), parse).IsFailure())
	require.ErrorIs(t, Map(Failure[string](errBoom), parse).Error, errBoom)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(1)", Success(1).String())
	assert.Equal(t, "Failure(boom)", Failure[int](errBoom).String())
}
