package errors

import (
	"errors"
	"fmt"
)

// The store reports exactly one of three outcomes for every operation:
// success, one of the sentinel errors below, or a *StorageError. Callers
// can therefore always tell "empty" from "broken".
var (
	NotFound      = errors.New("file not found")
	DuplicateName = errors.New("a file with this name already exists")
	DuplicateFile = errors.New("this exact file is already stored")
)

// ValidationError is a user-correctable rejection (oversized file, quota
// reached). Its message is shown to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError wraps an underlying database failure. The dispatch layer
// reports these generically and logs the wrapped cause.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
