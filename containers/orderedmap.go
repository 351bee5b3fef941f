package containers

import (
	"github.com/elliotchance/orderedmap"

	"github.com/anacrolix/enumerable"
)

// OrderedMap delivers key-value Pairs in insertion order. Overwriting a key
// keeps its original place.
type OrderedMap[K comparable, V any] struct {
	om *orderedmap.OrderedMap
}

func (me *OrderedMap[K, V]) init() {
	if me.om == nil {
		me.om = orderedmap.NewOrderedMap()
	}
}

func (me *OrderedMap[K, V]) Set(k K, v V) {
	me.init()
	me.om.Set(k, v)
}

func (me *OrderedMap[K, V]) Get(k K) (v V, ok bool) {
	if me.om == nil {
		return
	}
	i, ok := me.om.Get(k)
	if ok {
		v = i.(V)
	}
	return
}

func (me *OrderedMap[K, V]) Delete(k K) bool {
	if me.om == nil {
		return false
	}
	return me.om.Delete(k)
}

func (me *OrderedMap[K, V]) Len() int {
	if me.om == nil {
		return 0
	}
	return me.om.Len()
}

func (me *OrderedMap[K, V]) Each(f func(enumerable.Pair[K, V]) error) error {
	if me.om == nil {
		return nil
	}
	for e := me.om.Front(); e != nil; e = e.Next() {
		if err := f(enumerable.MakePair(e.Key.(K), e.Value.(V))); err != nil {
			return err
		}
	}
	return nil
}
