package vocab

import "errors"

// ErrNilReader is returned when Parse is handed a nil reader.
var ErrNilReader = errors.New("nil reader")

// ErrNotInitialized is returned by Reader and Writer values built without a files.Manager.
var ErrNotInitialized = errors.New("vocab: not initialized with file manager")
