package service

import "errors"

// ErrGradeNotFound is returned by GetGrade when no row has the requested id.
var ErrGradeNotFound = errors.New("grade not found")

// StorageError wraps any failure reported by the database while running an
// operation. Its message is the underlying error's message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
