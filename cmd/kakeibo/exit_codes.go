package main

import (
	"errors"

	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
)

type exitCoder interface {
	ExitCode() int
}

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error {
	return e.err
}

func (e exitError) ExitCode() int {
	if e.code == 0 {
		return 1
	}
	return e.code
}

func withExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return exitError{code: code, err: err}
}

// exitCodeForError distinguishes the failures a caller might branch
// on: 2 for bad input or flags, 3 for a wrong passphrase, 4 for a
// corrupt or unreadable ledger file, 1 for everything else.
func exitCodeForError(err error) int {
	if err == nil {
		return 0
	}
	var coded exitCoder
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeConfigInvalid:
		return 2
	case apperrors.ErrCodeStoreDecrypt:
		return 3
	case apperrors.ErrCodeStoreCorrupt, apperrors.ErrCodeStoreRead:
		return 4
	}
	return 1
}
