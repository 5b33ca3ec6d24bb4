package constants

import "errors"

// Static errors shared across internal packages.
var ErrNilRequest = errors.New("request is nil")
