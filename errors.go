package f16model

import "errors"

// ErrNotInitialized is returned by Step when called before a successful
// Install.
var ErrNotInitialized = errors.New("f16model: not initialized")

// ErrLowFidelityUnsupported is returned by Step when fiFlag selects the
// low-fidelity coefficient path, which has no source in this repository
// (see DESIGN.md).
var ErrLowFidelityUnsupported = errors.New("f16model: low-fidelity coefficient path unsupported")
