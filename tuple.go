package enumerable

// Pair groups the two values a container produces in a single step, such as
// a map's key and value. It is delivered as one element.
type Pair[K, V any] struct {
	Left  K
	Right V
}

func MakePair[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{k, v}
}

func (me Pair[K, V]) Unpack() (K, V) {
	return me.Left, me.Right
}

// Triple is Pair for steps that produce three values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func MakeTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{a, b, c}
}

func (me Triple[A, B, C]) Unpack() (A, B, C) {
	return me.First, me.Second, me.Third
}
