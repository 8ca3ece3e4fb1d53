package store

import (
	"errors"
	"fmt"
)

// Registry error kinds. Every error returned by [RegistryRepository] matches
// exactly one of them with [errors.Is]; use [errors.As] with *RegistryError
// to read the offending event and URL.
var (
	// ErrEventNotFound is returned when the event is not a key of the
	// registry.
	ErrEventNotFound = errors.New("event does not exist")

	// ErrEventHasNoURLs is returned when reading an event whose URL list is
	// empty.
	ErrEventHasNoURLs = errors.New("event has no registered URLs")

	// ErrURLAlreadyExists is returned when registering a URL twice for the
	// same event.
	ErrURLAlreadyExists = errors.New("url already exists for event")

	// ErrURLNotFound is returned when unregistering a URL that is not
	// registered for the event.
	ErrURLNotFound = errors.New("url does not exist for event")

	// ErrEventAlreadyExists is returned when creating an event that is
	// already a key of the registry.
	ErrEventAlreadyExists = errors.New("event already exists")

	// ErrStorageUnavailable covers a missing file/table/key, unreadable or
	// corrupt contents and failed writes.
	ErrStorageUnavailable = errors.New("webhook storage unavailable")
)

// RegistryError carries the identifiers a registry operation failed on.
type RegistryError struct {
	Kind  error
	Event string
	URL   string
}

func (e *RegistryError) Error() string {
	switch e.Kind {
	case ErrEventNotFound:
		return fmt.Sprintf("event '%s' does not exist", e.Event)
	case ErrEventHasNoURLs:
		return fmt.Sprintf("event '%s' has no registered URLs", e.Event)
	case ErrURLAlreadyExists:
		return fmt.Sprintf("url '%s' already exists for event '%s'", e.URL, e.Event)
	case ErrURLNotFound:
		return fmt.Sprintf("url '%s' does not exist for event '%s'", e.URL, e.Event)
	case ErrEventAlreadyExists:
		return fmt.Sprintf("event '%s' already exists", e.Event)
	default:
		return e.Kind.Error()
	}
}

func (e *RegistryError) Unwrap() error {
	return e.Kind
}

func eventNotFound(event string) error {
	return &RegistryError{Kind: ErrEventNotFound, Event: event}
}

func eventHasNoURLs(event string) error {
	return &RegistryError{Kind: ErrEventHasNoURLs, Event: event}
}

func urlAlreadyExists(url, event string) error {
	return &RegistryError{Kind: ErrURLAlreadyExists, Event: event, URL: url}
}

func urlNotFound(url, event string) error {
	return &RegistryError{Kind: ErrURLNotFound, Event: event, URL: url}
}

func eventAlreadyExists(event string) error {
	return &RegistryError{Kind: ErrEventAlreadyExists, Event: event}
}

// StorageError describes why the backing store could not be used.
type StorageError struct {
	Detail string
	Err    error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrStorageUnavailable, e.Detail)
	}

	return fmt.Sprintf("%s: %s: %v", ErrStorageUnavailable, e.Detail, e.Err)
}

func (e *StorageError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStorageUnavailable}
	}

	return []error{ErrStorageUnavailable, e.Err}
}

func storageUnavailable(detail string, err error) error {
	return &StorageError{Detail: detail, Err: err}
}

// Low-level database operation errors, wrapped into a [StorageError] by the
// SQL backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when a DML statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan registry rows")
)
