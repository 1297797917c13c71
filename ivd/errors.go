package ivd

import "errors"

// ErrResourceNotFound is returned when a registry file does not exist.
// Errors carrying it also match fs.ErrNotExist.
var ErrResourceNotFound = errors.New("ivd: resource not found")
