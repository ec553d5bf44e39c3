package prototype

import "errors"

// ErrNilSource src is nil
var ErrNilSource = errors.New("prototype: nil source")
