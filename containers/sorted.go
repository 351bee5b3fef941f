package containers

import (
	gbtree "github.com/google/btree"
	tbtree "github.com/tidwall/btree"
	"golang.org/x/exp/constraints"

	"github.com/anacrolix/enumerable"
)

const btreeDegree = 32

// SortedSet delivers distinct values in ascending order.
type SortedSet[T constraints.Ordered] struct {
	tree *gbtree.BTreeG[T]
}

func (me *SortedSet[T]) init() {
	if me.tree == nil {
		me.tree = gbtree.NewG[T](btreeDegree, func(a, b T) bool {
			return a < b
		})
	}
}

// Add reports whether x was not already present.
func (me *SortedSet[T]) Add(x T) bool {
	me.init()
	_, replaced := me.tree.ReplaceOrInsert(x)
	return !replaced
}

func (me *SortedSet[T]) Delete(x T) bool {
	if me.tree == nil {
		return false
	}
	_, ok := me.tree.Delete(x)
	return ok
}

func (me *SortedSet[T]) Len() int {
	if me.tree == nil {
		return 0
	}
	return me.tree.Len()
}

func (me *SortedSet[T]) Each(f func(T) error) (err error) {
	if me.tree == nil {
		return nil
	}
	me.tree.Ascend(func(x T) bool {
		err = f(x)
		return err == nil
	})
	return
}

// SortedMap delivers key-value Pairs in ascending key order.
type SortedMap[K constraints.Ordered, V any] struct {
	m *tbtree.Map[K, V]
}

func (me *SortedMap[K, V]) init() {
	if me.m == nil {
		me.m = tbtree.NewMap[K, V](btreeDegree)
	}
}

func (me *SortedMap[K, V]) Set(k K, v V) {
	me.init()
	me.m.Set(k, v)
}

func (me *SortedMap[K, V]) Get(k K) (v V, ok bool) {
	if me.m == nil {
		return
	}
	return me.m.Get(k)
}

func (me *SortedMap[K, V]) Len() int {
	if me.m == nil {
		return 0
	}
	return me.m.Len()
}

func (me *SortedMap[K, V]) Each(f func(enumerable.Pair[K, V]) error) (err error) {
	if me.m == nil {
		return nil
	}
	me.m.Scan(func(k K, v V) bool {
		err = f(enumerable.MakePair(k, v))
		return err == nil
	})
	return
}
