package storage

import "errors"

var ErrNotFound = errors.New("resource not found")
var ErrConflict = errors.New("resource conflict (e.g., duplicate key)")
var ErrDuplicateEmail = errors.New("email already registered")

// ErrInUse is returned when a row cannot be deleted because other rows reference it.
var ErrInUse = errors.New("resource still referenced")
