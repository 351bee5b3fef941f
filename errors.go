package enumerable

import (
	"github.com/anacrolix/enumerable/internal/errorsx"
)

const (
	// Returned (wrapped with the container type) when a value can't be
	// traversed.
	ErrCapabilityMissing = errorsx.String("container does not support each")
	// Return Stop from a consumer to end a traversal early without error.
	Stop = errorsx.String("stop traversal")
)
