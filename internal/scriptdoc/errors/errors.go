package errors

// Package errors provides sentinel errors for script documentation extraction.
// Callers wrap these with path context so failures can be classified with errors.Is.

import "errors"

var (
	// ErrRootNotFound indicates the configured scripts root does not exist.
	ErrRootNotFound = errors.New("scripts root not found")

	// ErrRootNotDirectory indicates the configured scripts root is a regular file.
	ErrRootNotDirectory = errors.New("scripts root is not a directory")

	// ErrWalkFailed indicates filesystem traversal of the scripts tree failed.
	ErrWalkFailed = errors.New("scripts directory walk failed")

	// ErrFileReadFailed indicates a script file could not be opened or read.
	ErrFileReadFailed = errors.New("script file read failed")

	// ErrDecodeFailed indicates a script file is not valid UTF-8 text.
	ErrDecodeFailed = errors.New("script file is not valid UTF-8")

	// ErrInvalidRelativePath indicates calculating the path relative to the scripts root failed.
	ErrInvalidRelativePath = errors.New("invalid relative path calculation")

	// ErrUnknownCategory indicates an entry lives under a top-level directory that is not a known category.
	ErrUnknownCategory = errors.New("unknown script category")

	// ErrInvalidExcludePattern indicates a configured exclude glob is malformed.
	ErrInvalidExcludePattern = errors.New("invalid exclude pattern")

	// ErrOutputWriteFailed indicates a generated page could not be written.
	ErrOutputWriteFailed = errors.New("generated page write failed")
)
