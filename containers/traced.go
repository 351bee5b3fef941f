package containers

import (
	"github.com/anacrolix/log"

	"github.com/anacrolix/enumerable"
)

// Traced logs every delivery of the wrapped container at debug level, and
// failures of the container itself as warnings.
type Traced[E any] struct {
	Inner  enumerable.Eacher[E]
	Logger log.Logger
}

func (me Traced[E]) Each(f func(E) error) error {
	n := 0
	consumerFailed := false
	err := me.Inner.Each(func(e E) error {
		me.Logger.Levelf(log.Debug, "delivering element %v: %v", n, e)
		n++
		err := f(e)
		consumerFailed = err != nil
		return err
	})
	if err != nil && !consumerFailed {
		me.Logger.Levelf(log.Warning, "container failed after %v elements: %v", n, err)
	}
	return err
}
