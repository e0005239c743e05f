package sequence

import (
	"encoding/json"
	"strconv"
	"testing"

	collerrors "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMake_CopiesInput(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3}
	seq := Make(input...)
	input[0] = 99

	assert.Equal(t, []int{1, 2, 3}, seq.ToSlice())

	out := seq.ToSlice()
	out[1] = 99

	assert.Equal(t, []int{1, 2, 3}, seq.ToSlice(), "ToSlice hands out a copy")
}

func TestToSlice_Idempotent(t *testing.T) {
	t.Parallel()

	xs := []string{"b", "a", "c"}

	assert.Equal(t, xs, Make(xs...).ToSlice())
	assert.Equal(t, xs, Make(Make(xs...).ToSlice()...).ToSlice())
	assert.Equal(t, []int{}, Make[int]().ToSlice())
	assert.NotNil(t, Sequence[int]{}.ToSlice())
}

func TestGet(t *testing.T) {
	t.Parallel()

	seq := Make("a", "b", "c")

	for i, want := range []string{"a", "b", "c"} {
		got, err := seq.Get(i).Get()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	tests := []struct {
		index   int
		message string
	}{
		{-1, "Index out of bounds -1 for length 3"},
		{3, "Index out of bounds 3 for length 3"},
		{100, "Index out of bounds 100 for length 3"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.index), func(t *testing.T) {
			t.Parallel()

			res := seq.Get(tt.index)
			require.True(t, res.IsFailure())
			require.ErrorIs(t, res.Error, collerrors.ErrIndexOutOfBounds)
			assert.EqualError(t, res.Error, tt.message)

			var oob *collerrors.IndexOutOfBoundsError
			require.ErrorAs(t, res.Error, &oob)
			assert.Equal(t, tt.index, oob.Index)
			assert.Equal(t, 3, oob.Length)
		})
	}

	assert.EqualError(t, Make[int]().Get(0).Error, "Index out of bounds 0 for length 0")
}

func TestFirstLast(t *testing.T) {
	t.Parallel()

	seq := Make(1, 2, 3)
	assert.Equal(t, optional.Some(1), seq.First())
	assert.Equal(t, optional.Some(3), seq.Last())

	single := Make(7)
	assert.Equal(t, single.First(), single.Last())

	empty := Make[int]()
	assert.True(t, empty.First().Empty())
	assert.True(t, empty.Last().Empty())

	// A present zero value is not absence.
	assert.Equal(t, optional.Some(0), Make(0).First())
}

func TestSizeQueries(t *testing.T) {
	t.Parallel()

	seq := Make(1, 2, 3, 4)
	assert.Equal(t, 4, seq.Len())
	assert.True(t, seq.Populated())
	assert.False(t, seq.Empty())
	assert.Equal(t, 2, seq.Count(func(n int) bool { return n%2 == 0 }))

	var zero Sequence[int]
	assert.Equal(t, 0, zero.Len())
	assert.True(t, zero.Empty())
	assert.False(t, zero.Populated())
	assert.Equal(t, 0, zero.Count(func(int) bool { return true }))
}

func TestIteration(t *testing.T) {
	t.Parallel()

	seq := Make("x", "y", "z")

	for range 2 {
		var got []string
		for v := range seq.All() {
			got = append(got, v)
		}

		assert.Equal(t, []string{"x", "y", "z"}, got)
	}

	indexes := map[int]string{}
	for i, v := range seq.Enumerate() {
		indexes[i] = v
	}

	assert.Equal(t, seq.ToMap(), indexes)

	var backward []string
	for _, v := range seq.Backward() {
		backward = append(backward, v)
	}

	assert.Equal(t, []string{"z", "y", "x"}, backward)

	var first string
	for v := range seq.All() {
		first = v

		break
	}

	assert.Equal(t, "x", first)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	seq := Make(5, 1, 4, 2, 3)
	even := seq.Filter(func(n int) bool { return n%2 == 0 })

	assert.Equal(t, []int{4, 2}, even.ToSlice())
	assert.Equal(t, []int{5, 1, 4, 2, 3}, seq.ToSlice())
	assert.True(t, seq.Filter(func(int) bool { return false }).Empty())
}

func TestSlice(t *testing.T) {
	t.Parallel()

	seq := Make(0, 1, 2, 3, 4)

	sub, err := seq.Slice(1, 3).Get()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, sub.ToSlice())

	whole, err := seq.Slice(0, 5).Get()
	require.NoError(t, err)
	assert.Equal(t, seq.ToSlice(), whole.ToSlice())

	empty, err := seq.Slice(5, 5).Get()
	require.NoError(t, err)
	assert.True(t, empty.Empty())

	assert.EqualError(t, seq.Slice(-1, 2).Error, "Index out of bounds -1 for length 5")
	assert.EqualError(t, seq.Slice(6, 6).Error, "Index out of bounds 6 for length 5")
	assert.EqualError(t, seq.Slice(1, 6).Error, "Index out of bounds 6 for length 5")
	assert.EqualError(t, seq.Slice(3, 2).Error, "Index out of bounds 2 for length 5")
}

func TestConversions(t *testing.T) {
	t.Parallel()

	seq := Make(10, 20)

	assert.Equal(t, map[int]int{0: 10, 1: 20}, seq.ToMap())
	assert.Equal(t, map[int]struct{}{10: {}, 20: {}}, ToSet(Make(10, 20, 10)))
	assert.Equal(t, "[10 20]", seq.String())
	assert.Equal(t, "[]", Make[int]().String())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Make("a", "b"))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))

	data, err = json.Marshal(Sequence[int]{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	type wrapper struct {
		Items Sequence[int] `json:"items"`
	}

	data, err = json.Marshal(wrapper{Items: Make(1, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[1,2]}`, string(data))
}

func TestYAML(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(map[string]any{"items": Make(1, 2)})
	require.NoError(t, err)

	var decoded map[string][]int
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, map[string][]int{"items": {1, 2}}, decoded)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	seq := Make(1, 2)
	assert.Equal(t, seq, Collect[int](seq))
	assert.Equal(t, []int{5}, Collect[int](optional.Some(5)).ToSlice())
	assert.True(t, Collect[int](optional.None[int]()).Empty())
}
