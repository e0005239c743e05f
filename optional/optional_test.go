package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	some := Some(42)
	assert.True(t, some.NonEmpty())
	assert.False(t, some.Empty())

	val, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	none := None[int]()
	assert.True(t, none.Empty())

	val, ok = none.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val)
}

func TestZeroValueIsPresent(t *testing.T) {
	t.Parallel()

	// The zero value of T must remain distinguishable from absence.
	opt := Some(0)
	assert.True(t, opt.NonEmpty())

	var unset Value[int]
	assert.True(t, unset.Empty())
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}

	v, ok := m["a"]
	assert.Equal(t, Some(1), FromPair(v, ok))

	v, ok = m["b"]
	assert.Equal(t, None[int](), FromPair(v, ok))
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", Some("x").GetOrPanic())
	assert.Panics(t, func() {
		None[string]().GetOrPanic()
	})
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Some(42).GetOrElse(99))
	assert.Equal(t, 99, None[int]().GetOrElse(99))

	called := false
	assert.Equal(t, 1, Some(1).GetOrElseFunc(func() int {
		called = true

		return 2
	}))
	assert.False(t, called)
	assert.Equal(t, 2, None[int]().GetOrElseFunc(func() int { return 2 }))
}

func TestOrElseAndFilter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(1), Some(1).OrElse(Some(2)))
	assert.Equal(t, Some(2), None[int]().OrElse(Some(2)))

	even := func(n int) bool { return n%2 == 0 }
	assert.Equal(t, Some(4), Some(4).Filter(even))
	assert.True(t, Some(3).Filter(even).Empty())
	assert.True(t, None[int]().Filter(even).Empty())
}

func TestAll(t *testing.T) {
	t.Parallel()

	opt := Some("v")

	// restartable
	for range 2 {
		var got []string
		for v := range opt.All() {
			got = append(got, v)
		}

		assert.Equal(t, []string{"v"}, got)
	}

	for range None[string]().All() {
		t.Fatal("None must not yield")
	}
}

func TestEquals(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	assert.True(t, Some(1).Equals(Some(1), eq))
	assert.False(t, Some(1).Equals(Some(2), eq))
	assert.False(t, Some(1).Equals(None[int](), eq))
	assert.True(t, None[int]().Equals(None[int](), eq))
}

func TestMapAndFlatMap(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }
	assert.Equal(t, Some(4), Map(Some(2), double))
	assert.True(t, Map(None[int](), double).Empty())

	half := func(n int) Value[int] {
		if n%2 != 0 {
			return None[int]()
		}

		return Some(n / 2)
	}
	assert.Equal(t, Some(2), FlatMap(Some(4), half))
	assert.True(t, FlatMap(Some(3), half).Empty())
	assert.True(t, FlatMap(None[int](), half).Empty())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(42)", Some(42).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		First Value[int]    `json:"first"`
		Last  Value[string] `json:"last"`
	}

	data, err := json.Marshal(payload{First: Some(1), Last: None[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"first":1,"last":null}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Some(1), decoded.First)
	assert.True(t, decoded.Last.Empty())

	var bad Value[int]
	require.Error(t, json.Unmarshal([]byte(`"nope"`), &bad))
}
