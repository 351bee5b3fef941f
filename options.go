package enumerable

import (
	g "github.com/anacrolix/generics"
	"github.com/anacrolix/log"
)

type config struct {
	offset int
	logger g.Option[log.Logger]
}

type Option func(*config)

// Offset sets the position given to the first element. The default is 0.
func Offset(n int) Option {
	return func(c *config) {
		c.offset = n
	}
}

// Logger reports traversal failures at debug level.
func Logger(l log.Logger) Option {
	return func(c *config) {
		c.logger.Set(l)
	}
}

func newConfig(opts ...Option) (c config) {
	for _, opt := range opts {
		opt(&c)
	}
	return
}

func (c config) logFailure(err error, delivered int) {
	if err == nil || !c.logger.Ok {
		return
	}
	c.logger.Value.Levelf(log.Debug, "traversal failed after %v elements: %v", delivered, err)
}
