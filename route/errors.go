package route

import "errors"

// ErrNilLayers indicates that no graph is available for a criterion.
var ErrNilLayers = errors.New("route: missing weight layer")
