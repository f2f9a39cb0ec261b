// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedFormat signals an export format outside the closed set.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrEmptyRoster signals that team filtering left no users in scope.
	ErrEmptyRoster = errors.New("empty roster")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrUnknownBackend signals an unrecognized storage backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)
