package enumerable

// Eacher is the one capability a container must supply to be traversed. Each
// calls f once per element, in the container's own stable order, and returns
// the first error f returns, or any error of the container itself.
type Eacher[E any] interface {
	Each(f func(E) error) error
}

// EachFunc adapts an ordinary function to Eacher.
type EachFunc[E any] func(f func(E) error) error

func (me EachFunc[E]) Each(f func(E) error) error {
	return me(f)
}

// EacherWith is for containers whose traversal takes extra arguments, such as
// where to start or which direction to go. The arguments are passed through
// untouched.
type EacherWith[A, E any] interface {
	Each(f func(E) error, args ...A) error
}
