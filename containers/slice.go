package containers

import (
	"iter"

	"github.com/anacrolix/enumerable"
)

// Slice delivers its elements front to back.
type Slice[E any] []E

func (me Slice[E]) Each(f func(E) error) error {
	for _, e := range me {
		if err := f(e); err != nil {
			return err
		}
	}
	return nil
}

// Seq delivers whatever a range-over-func sequence yields.
type Seq[E any] iter.Seq[E]

func (me Seq[E]) Each(f func(E) error) (err error) {
	for e := range me {
		err = f(e)
		if err != nil {
			return
		}
	}
	return
}

// Seq2 delivers each key and value of a two-value sequence as one Pair.
type Seq2[K, V any] iter.Seq2[K, V]

func (me Seq2[K, V]) Each(f func(enumerable.Pair[K, V]) error) (err error) {
	for k, v := range me {
		err = f(enumerable.MakePair(k, v))
		if err != nil {
			return
		}
	}
	return
}
