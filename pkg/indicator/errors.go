package indicator

import "github.com/pkg/errors"

// ErrInvalidParameter is returned when an indicator is constructed with an unusable parameter.
var ErrInvalidParameter = errors.New("invalid parameter")
