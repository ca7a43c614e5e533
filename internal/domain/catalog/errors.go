package catalog

import "errors"

// ErrDomainNotFound indicates no catalog entry exists for the given slug.
var ErrDomainNotFound = errors.New("content domain not found")
