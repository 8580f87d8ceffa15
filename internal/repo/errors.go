package repo

import "errors"

// ErrPersistence wraps any storage-layer fault. Callers must not treat the
// record as committed when a create returns this.
var ErrPersistence = errors.New("persistence failure")
