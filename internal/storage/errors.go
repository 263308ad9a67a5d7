package storage

import "fmt"

// DecodeError reports a persisted value that could not be decoded.
type DecodeError struct {
	Key string
	Err error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("decode %q: %v", e.Key, e.Err)
}

func (e DecodeError) Unwrap() error { return e.Err }

// ReadError reports a storage failure while reading a key.
type ReadError struct {
	Key string
	Err error
}

func (e ReadError) Error() string {
	return fmt.Sprintf("read %q: %v", e.Key, e.Err)
}

func (e ReadError) Unwrap() error { return e.Err }

// WriteError reports a value that could not be encoded or written.
type WriteError struct {
	Key string
	Err error
}

func (e WriteError) Error() string {
	return fmt.Sprintf("write %q: %v", e.Key, e.Err)
}

func (e WriteError) Unwrap() error { return e.Err }
