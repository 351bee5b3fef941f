package enumerable

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// Enumerator is a lazy, restartable view of an indexed traversal. It keeps
// only the container and how to traverse it: every consumption starts again
// from the first position. Enumerators are themselves Eachers, so they can be
// indexed again.
type Enumerator[E any] struct {
	src Eacher[E]
	cfg config
}

func (me *Enumerator[E]) Each(f func(Indexed[E]) error) error {
	return eachWithIndex(me.src, func(e E, i int) error {
		return f(Indexed[E]{e, i})
	}, me.cfg)
}

// ToSlice runs the traversal to completion and returns every pair in order.
func (me *Enumerator[E]) ToSlice() (ret []Indexed[E], err error) {
	err = me.Each(func(p Indexed[E]) error {
		ret = append(ret, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if ret == nil {
		ret = []Indexed[E]{}
	}
	return
}

// All is a range-over-func view of the pairs. A failure is yielded once with
// a zero pair and ends the sequence. Breaking out of the loop stops the
// container.
func (me *Enumerator[E]) All() iter.Seq2[Indexed[E], error] {
	return func(yield func(Indexed[E], error) bool) {
		stopped := false
		err := me.Each(func(p Indexed[E]) error {
			if !yield(p, nil) {
				stopped = true
				return Stop
			}
			return nil
		})
		if err != nil && !stopped {
			yield(Indexed[E]{}, err)
		}
	}
}

// Pull converts All to a pull-style iterator. stop must be called if next
// isn't called until it reports false.
func (me *Enumerator[E]) Pull() (next func() (Indexed[E], error, bool), stop func()) {
	return iter.Pull2(me.All())
}

// First returns the first pair, reading no further than that.
func (me *Enumerator[E]) First() (ret g.Option[Indexed[E]], err error) {
	for p, err := range me.All() {
		if err != nil {
			return g.None[Indexed[E]](), err
		}
		return g.Some(p), nil
	}
	return
}

// Count traverses the container and returns how many elements it delivered.
func (me *Enumerator[E]) Count() (n int, err error) {
	err = me.Each(func(Indexed[E]) error {
		n++
		return nil
	})
	return
}
