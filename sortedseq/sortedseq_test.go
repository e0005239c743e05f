package sortedseq

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/amp-labs/amp-collections/compare"
	collerrors "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/scalar"
	"github.com/amp-labs/amp-collections/sequence"
	"github.com/amp-labs/amp-collections/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type person struct {
	name string
	age  int
}

func byAge() compare.Comparator[person] {
	return compare.By(func(p person) int { return p.age }, compare.Ordered[int]())
}

func names(s Sequence[person]) []string {
	return sequence.Map(s.Sequence, func(p person) string { return p.name }).ToSlice()
}

func isSorted[A any](t *testing.T, s Sequence[A]) {
	t.Helper()

	assert.True(t, slices.IsSortedFunc(s.ToSlice(), s.Comparator().Cmp), "not sorted: %v", s)
}

func TestMake_Sorts(t *testing.T) {
	t.Parallel()

	seq := Make[int](scalar.Int, 3, 1, 2)

	assert.Equal(t, []int{1, 2, 3}, seq.ToSlice())
	isSorted(t, seq)

	assert.Equal(t, []int{}, Make(compare.Ordered[int]()).ToSlice())
	assert.PanicsWithValue(t, "sortedseq: nil comparator", func() { Make[int](nil, 1) })
	assert.PanicsWithValue(t, "sortedseq: nil comparator", func() { Make[int](compare.Func[int](nil), 2, 1) })
}

func TestMake_DoesNotTouchInput(t *testing.T) {
	t.Parallel()

	input := []int{3, 1, 2}
	_ = Make(compare.Ordered[int](), input...)

	assert.Equal(t, []int{3, 1, 2}, input)
}

func TestMake_Stable(t *testing.T) {
	t.Parallel()

	seq := Make(byAge(),
		person{"carol", 30},
		person{"alice", 20},
		person{"bob", 30},
		person{"dave", 20},
	)

	assert.Equal(t, []string{"alice", "dave", "carol", "bob"}, names(seq))
}

func TestAdd(t *testing.T) {
	t.Parallel()

	seq := Make(byAge(), person{"alice", 20}, person{"carol", 40})
	added := seq.Add(person{"bob", 30}).Add(person{"eve", 20}).Add(person{"zed", 50}).Add(person{"amy", 10})

	assert.Equal(t, []string{"amy", "alice", "eve", "bob", "carol", "zed"}, names(added))
	assert.Equal(t, []string{"alice", "carol"}, names(seq), "receiver unchanged")
	isSorted(t, added)
}

func TestAddAllAndConcat(t *testing.T) {
	t.Parallel()

	seq := Make(compare.Ordered[int](), 1, 5, 9)

	assert.Equal(t, []int{0, 1, 5, 6, 9, 10}, seq.AddAll(10, 0, 6).ToSlice())
	assert.Equal(t, seq.ToSlice(), seq.AddAll().ToSlice())

	other := Make(compare.Reverse(compare.Ordered[int]()), 2, 8)
	assert.Equal(t, []int{8, 2}, other.ToSlice())

	joined := seq.Concat(other)
	assert.Equal(t, []int{1, 2, 5, 8, 9}, joined.ToSlice())
	isSorted(t, joined)

	fromPlain := seq.Concat(sequence.Make(7, 3))
	assert.Equal(t, []int{1, 3, 5, 7, 9}, fromPlain.ToSlice())
}

func TestMap_Resorts(t *testing.T) {
	t.Parallel()

	seq := Make(compare.Ordered[int](), -3, 1, 2)
	squared := seq.Map(func(n int) int { return n * n })

	assert.Equal(t, []int{1, 4, 9}, squared.ToSlice())
	isSorted(t, squared)

	lengths := MapTo(Make(compare.Ordered[string](), "ccc", "a", "bb"), compare.Reverse(compare.Ordered[int]()),
		func(s string) int { return len(s) })
	assert.Equal(t, []int{3, 2, 1}, lengths.ToSlice())
}

func TestFilter_KeepsOrder(t *testing.T) {
	t.Parallel()

	seq := Make(compare.Ordered[int](), 5, 4, 3, 2, 1)
	odd := seq.Filter(func(n int) bool { return n%2 == 1 })

	assert.Equal(t, []int{1, 3, 5}, odd.ToSlice())
	assert.True(t, Is[int](odd))
}

func TestSlice(t *testing.T) {
	t.Parallel()

	seq := Make(compare.Ordered[int](), 4, 3, 2, 1)

	sub, err := seq.Slice(1, 3).Get()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, sub.ToSlice())
	assert.True(t, Is[int](sub))

	bad := seq.Slice(2, 9)
	require.ErrorIs(t, bad.Error, collerrors.ErrIndexOutOfBounds)
	assert.EqualError(t, bad.Error, "Index out of bounds 9 for length 4")
}

func TestSearch(t *testing.T) {
	t.Parallel()

	seq := Make(compare.Ordered[int](), 1, 3, 3, 3, 7)

	assert.Equal(t, optional.Some(1), seq.Search(3))
	assert.Equal(t, optional.Some(0), seq.Search(1))
	assert.Equal(t, optional.Some(4), seq.Search(7))
	assert.True(t, seq.Search(4).Empty())
	assert.True(t, seq.Search(0).Empty())
	assert.True(t, seq.Search(8).Empty())
	assert.True(t, Make(compare.Ordered[int]()).Search(1).Empty())
}

func TestCompareAndEquals(t *testing.T) {
	t.Parallel()

	insensitive := compare.By(strings.ToLower, compare.Ordered[string]())

	a := Make(insensitive, "b", "A")
	b := Make(insensitive, "a", "B")
	c := Make(insensitive, "a", "b", "c")

	assert.True(t, a.Equals(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 1, c.Compare(a))
	assert.False(t, a.Equals(c))
}

func TestBaseOperations(t *testing.T) {
	t.Parallel()

	seq := Make(compare.Natural(), "file10", "file2", "file1")

	assert.Equal(t, optional.Some("file1"), seq.First())
	assert.Equal(t, optional.Some("file10"), seq.Last())
	assert.Equal(t, "file2", seq.Get(1).GetOrPanic())
	assert.EqualError(t, seq.Get(3).Error, "Index out of bounds 3 for length 3")
	assert.Equal(t, 3, seq.Len())

	data, err := json.Marshal(seq)
	require.NoError(t, err)
	assert.JSONEq(t, `["file1","file2","file10"]`, string(data))
}

func TestCollation(t *testing.T) {
	t.Parallel()

	// German collation orders accented letters with their base letter.
	seq := Make(compare.Collate(language.German), "zebra", "Äpfel", "apple")

	assert.Equal(t, []string{"Äpfel", "apple", "zebra"}, seq.ToSlice())
	assert.Equal(t, []string{"Äpfel", "apple", "banane", "zebra"}, seq.Add("banane").ToSlice())
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var zero Sequence[int]

	assert.True(t, zero.Empty())
	assert.Nil(t, zero.Comparator())
	assert.False(t, Is[int](zero))
	assert.Panics(t, func() { zero.Add(1) })
}

func TestSortableWrappers(t *testing.T) {
	t.Parallel()

	seq := Make(sortable.Comparator[sortable.Fold](), "banana", "Apple", "cherry", "apple")

	assert.Equal(t, []sortable.Fold{"Apple", "apple", "banana", "cherry"}, seq.ToSlice())
	assert.Equal(t, optional.Some(0), seq.Search("APPLE"))
}
