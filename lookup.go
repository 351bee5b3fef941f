package enumerable

import (
	"iter"
	"reflect"

	"github.com/pkg/errors"
)

type iterater[E any] interface {
	Iterate(func(E) bool)
}

type ranger[E any] interface {
	Range(func(E) bool)
}

type ranger2[K, V any] interface {
	Range(func(K, V) bool)
}

// Lookup resolves container to an Eacher of E. Only these shapes are accepted:
// Eacher[E], func(func(E) error) error, iter.Seq[E] and func(func(E) bool),
// Iterate(func(E) bool) and Range(func(E) bool) methods, and slices (named or
// not) whose element type is exactly E. Anything else, maps included, fails
// with ErrCapabilityMissing. Use LookupPairs for two-value sequences.
func Lookup[E any](container any) (Eacher[E], error) {
	switch c := container.(type) {
	case Eacher[E]:
		return c, nil
	case func(func(E) error) error:
		return EachFunc[E](c), nil
	case iter.Seq[E]:
		return seqEacher(c), nil
	case func(func(E) bool):
		return seqEacher(c), nil
	case iterater[E]:
		return seqEacher(c.Iterate), nil
	case ranger[E]:
		return seqEacher(c.Range), nil
	case []E:
		return seqEacher(func(yield func(E) bool) {
			for _, e := range c {
				if !yield(e) {
					return
				}
			}
		}), nil
	}
	if v := reflect.ValueOf(container); v.Kind() == reflect.Slice && v.Type().Elem() == reflect.TypeFor[E]() {
		return seqEacher(func(yield func(E) bool) {
			for i := range v.Len() {
				e, _ := v.Index(i).Interface().(E)
				if !yield(e) {
					return
				}
			}
		}), nil
	}
	return nil, errors.Wrapf(ErrCapabilityMissing, "%T", container)
}

// LookupPairs is Lookup for containers producing keys and values together. On
// top of what Lookup accepts for Pair[K, V], it takes iter.Seq2[K, V],
// func(func(K, V) bool) and Range(func(K, V) bool) methods, delivering each
// key and value as one Pair.
func LookupPairs[K, V any](container any) (Eacher[Pair[K, V]], error) {
	var seq iter.Seq2[K, V]
	switch c := container.(type) {
	case iter.Seq2[K, V]:
		seq = c
	case func(func(K, V) bool):
		seq = c
	case ranger2[K, V]:
		seq = c.Range
	default:
		return Lookup[Pair[K, V]](container)
	}
	return seqEacher(func(yield func(Pair[K, V]) bool) {
		for k, v := range seq {
			if !yield(MakePair(k, v)) {
				return
			}
		}
	}), nil
}

// Bridges bool-yield iteration to Eacher, carrying the consumer's error out.
func seqEacher[E any](seq iter.Seq[E]) EachFunc[E] {
	return func(f func(E) error) (err error) {
		seq(func(e E) bool {
			err = f(e)
			return err == nil
		})
		return
	}
}
