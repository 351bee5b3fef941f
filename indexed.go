package enumerable

import (
	"slices"

	"github.com/anacrolix/enumerable/internal/errorsx"
)

// Indexed is an element paired with the position it was delivered at.
type Indexed[E any] struct {
	Elem  E
	Index int
}

func (me Indexed[E]) Unpack() (E, int) {
	return me.Elem, me.Index
}

// EachWithIndex calls f with every element of c and its position, then
// returns c. Grouped elements arrive whole as the first argument. Errors from
// f or c end the traversal and are returned as is, with a nil container.
func EachWithIndex[E any](c Eacher[E], f func(E, int) error, opts ...Option) (Eacher[E], error) {
	err := eachWithIndex(c, f, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// WithIndex returns an Enumerator over the indexed elements of c. Nothing is
// read from c until the Enumerator is consumed.
func WithIndex[E any](c Eacher[E], opts ...Option) *Enumerator[E] {
	return &Enumerator[E]{
		src: c,
		cfg: newConfig(opts...),
	}
}

// EachWithIndexArgs is EachWithIndex for containers that take arguments. args
// are passed to c's Each.
func EachWithIndexArgs[A, E any](c EacherWith[A, E], f func(E, int) error, args []A, opts ...Option) (EacherWith[A, E], error) {
	err := eachWithIndex(bindArgs(c, args), f, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// WithIndexArgs is WithIndex for containers that take arguments. The same args
// are passed to c every time the Enumerator is consumed.
func WithIndexArgs[A, E any](c EacherWith[A, E], args []A, opts ...Option) *Enumerator[E] {
	return WithIndex[E](bindArgs(c, args), opts...)
}

func bindArgs[A, E any](c EacherWith[A, E], args []A) EachFunc[E] {
	args = slices.Clone(args)
	return func(f func(E) error) error {
		return c.Each(f, args...)
	}
}

// Traversal holds the outcome of Traverse. Exactly one field is set.
type Traversal[E any] struct {
	// The container as passed to Traverse, after an eager traversal.
	Container any
	// Set instead when no consumer was given.
	Enumerator *Enumerator[E]
}

// Traverse runs an indexed traversal over any container Lookup accepts. With
// a consumer it traverses immediately, otherwise it returns an Enumerator.
// Containers that can't be traversed fail before anything is read, in both
// modes.
func Traverse[E any](container any, f func(E, int) error, opts ...Option) (ret Traversal[E], err error) {
	c, err := Lookup[E](container)
	if err != nil {
		return
	}
	if f == nil {
		ret.Enumerator = WithIndex(c, opts...)
		return
	}
	err = eachWithIndex(c, f, newConfig(opts...))
	if err != nil {
		return
	}
	ret.Container = container
	return
}

func eachWithIndex[E any](c Eacher[E], f func(E, int) error, cfg config) error {
	pos := cfg.offset
	// The first consumer error wins, even if the container drops it.
	var ferr error
	err := c.Each(func(e E) error {
		if ferr != nil {
			return ferr
		}
		ferr = f(e, pos)
		pos++
		return ferr
	})
	if ferr != nil {
		err = ferr
	}
	err = errorsx.Ignore(err, Stop)
	cfg.logFailure(err, pos-cfg.offset)
	return err
}
