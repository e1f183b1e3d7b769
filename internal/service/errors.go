package service

import "errors"

var (
	// ErrKeyUnavailable is returned when no tenant context exists to scope
	// a master key; cryptographic operations refuse to run on an undefined
	// key.
	ErrKeyUnavailable = errors.New("no tenant context for master key")

	// ErrBadPassphraseOrCorrupt is returned by backup import when the
	// artifact cannot be authenticated: wrong passphrase or damaged file.
	ErrBadPassphraseOrCorrupt = errors.New("bad passphrase or corrupt backup")

	// ErrTenantMismatch is returned by backup import when the artifact was
	// exported for a different tenant than the current one.
	ErrTenantMismatch = errors.New("backup belongs to a different tenant")

	// ErrEditInProgress is returned when a second edit is attempted on a
	// thread that already has an active edit session.
	ErrEditInProgress = errors.New("edit already in progress")

	// ErrThreadBusy is returned when a send or edit is attempted while the
	// thread has a request in flight.
	ErrThreadBusy = errors.New("thread request in flight")

	// ErrThreadNotOpen is returned when an operation targets a conversation
	// that has not been opened or has been closed.
	ErrThreadNotOpen = errors.New("thread not open")

	// ErrMessageNotFound is returned when an edit targets a message id not
	// present in the thread.
	ErrMessageNotFound = errors.New("message not found in thread")
)
