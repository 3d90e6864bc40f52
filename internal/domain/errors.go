package domain

import "errors"

// ErrRouteNotFound is returned by repositories when the requested route
// does not exist. Handlers map this to HTTP 404.
var ErrRouteNotFound = errors.New("route not found")
