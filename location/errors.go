package location

import "errors"

// errOutOfRoom is an invariant violation: Copy's destination buffer was
// undersized by the caller, which should never happen for a correctly
// computed GetDataSize()-sized allocation.
var errOutOfRoom = errors.New("location: destination buffer too small during copy")
