package enumerable

import (
	"iter"
	"maps"
	"slices"
	"testing"

	qt "github.com/go-quicktest/qt"
)

type iterateOnly []int

func (me iterateOnly) Iterate(f func(int) bool) {
	for _, x := range me {
		if !f(x) {
			return
		}
	}
}

type ints []int

type rangeOnly []int

func (me rangeOnly) Range(f func(int) bool) {
	iterateOnly(me).Iterate(f)
}

func TestLookupShapes(t *testing.T) {
	want := []int{2, 5, 3}
	eachFn := func(f func(int) error) error {
		for _, x := range want {
			if err := f(x); err != nil {
				return err
			}
		}
		return nil
	}
	for _, c := range []any{
		&counter[int]{values: want},
		eachFn,
		EachFunc[int](eachFn),
		slices.Values(want),
		(func(func(int) bool))(slices.Values(want)),
		iterateOnly(want),
		rangeOnly(want),
		ints(want),
		want,
	} {
		e, err := Lookup[int](c)
		qt.Assert(t, qt.IsNil(err), qt.Commentf("%T", c))
		pairs, err := WithIndex(e).ToSlice()
		qt.Assert(t, qt.IsNil(err))
		qt.Check(t, qt.DeepEquals(pairs, []Indexed[int]{{2, 0}, {5, 1}, {3, 2}}), qt.Commentf("%T", c))
	}
}

func TestLookupSeqStopsOnError(t *testing.T) {
	var yielded int
	var seq iter.Seq[int] = func(yield func(int) bool) {
		for i := 0; ; i++ {
			yielded++
			if !yield(i) {
				return
			}
		}
	}
	e, err := Lookup[int](seq)
	qt.Assert(t, qt.IsNil(err))
	_, err = EachWithIndex(e, func(x, i int) error {
		if i == 4 {
			return Stop
		}
		return nil
	})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(yielded, 5))
}

func TestLookupMissing(t *testing.T) {
	_, err := Lookup[string](map[string]int{})
	qt.Assert(t, qt.ErrorIs(err, ErrCapabilityMissing))
	qt.Assert(t, qt.ErrorMatches(err, `map\[string\]int: .*`))
}

func TestLookupNamedSliceOfInterfaces(t *testing.T) {
	type errs []error
	boom := errorString("boom")
	e, err := Lookup[error](errs{nil, boom})
	qt.Assert(t, qt.IsNil(err))
	pairs, err := WithIndex(e).ToSlice()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(pairs, []Indexed[error]{{nil, 0}, {boom, 1}}))
}

type errorString string

func (me errorString) Error() string {
	return string(me)
}

func TestLookupPairs(t *testing.T) {
	want := []Indexed[Pair[int, string]]{{MakePair(0, "a"), 0}, {MakePair(1, "b"), 1}}
	values := []string{"a", "b"}
	for _, c := range []any{
		slices.All(values),
		(func(func(int, string) bool))(slices.All(values)),
		[]Pair[int, string]{MakePair(0, "a"), MakePair(1, "b")},
	} {
		e, err := LookupPairs[int, string](c)
		qt.Assert(t, qt.IsNil(err), qt.Commentf("%T", c))
		pairs, err := WithIndex(e).ToSlice()
		qt.Assert(t, qt.IsNil(err))
		qt.Check(t, qt.DeepEquals(pairs, want), qt.Commentf("%T", c))
	}
}

// Ranges over its keys in order, with their lengths as values.
type lengths []string

func (me lengths) Range(f func(string, int) bool) {
	for _, k := range me {
		if !f(k, len(k)) {
			return
		}
	}
}

func TestLookupPairsRange(t *testing.T) {
	e, err := LookupPairs[string, int](lengths{"fig", "apple"})
	qt.Assert(t, qt.IsNil(err))
	pairs, err := WithIndex(e).ToSlice()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(pairs, []Indexed[Pair[string, int]]{
		{MakePair("fig", 3), 0},
		{MakePair("apple", 5), 1},
	}))
}

func TestLookupPairsMissing(t *testing.T) {
	_, err := LookupPairs[string, int](maps.All(map[int]string{}))
	qt.Assert(t, qt.ErrorIs(err, ErrCapabilityMissing))
}
