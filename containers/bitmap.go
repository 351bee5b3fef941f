package containers

import (
	"github.com/RoaringBitmap/roaring"
)

type BitConstraint interface {
	~int | ~uint32
}

// Bitmap is a compressed set of small integers, delivered in ascending order.
type Bitmap[T BitConstraint] struct {
	roaring.Bitmap
}

func (me *Bitmap[T]) Add(x T) {
	me.Bitmap.Add(uint32(x))
}

func (me *Bitmap[T]) Contains(x T) bool {
	return me.Bitmap.Contains(uint32(x))
}

func (me *Bitmap[T]) Remove(x T) {
	me.Bitmap.Remove(uint32(x))
}

func (me *Bitmap[T]) Each(f func(T) error) (err error) {
	me.Bitmap.Iterate(func(x uint32) bool {
		err = f(T(x))
		return err == nil
	})
	return
}
