package gblogo

import (
	"errors"
	"fmt"
)

// ParseError reports a token that is not a two-digit hex value.
type ParseError struct {
	Index int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token %d: invalid hex byte %q: %v", e.Index, e.Token, e.Err)
	}
	return fmt.Sprintf("token %d: invalid hex byte %q: expected 2 digits", e.Index, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError reports a failure to open, write, read or close a file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

var (
	ErrROMTooBig        = errors.New("rom is bigger than 32KB")
	ErrROMTooSmall      = errors.New("rom is too small to contain a header")
	ErrLogoMismatch     = errors.New("header logo does not match")
	ErrChecksumMismatch = errors.New("header checksum does not match")
)

// ChecksumError carries the computed and stored header checksums.
type ChecksumError struct {
	Want, Got byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%v: computed 0x%02X, stored 0x%02X", ErrChecksumMismatch, e.Want, e.Got)
}

func (e *ChecksumError) Is(target error) bool {
	return target == ErrChecksumMismatch
}
