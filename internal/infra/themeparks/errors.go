package themeparks

import "errors"

var ErrUnexpectedStatus = errors.New("unexpected status code from live feed")
