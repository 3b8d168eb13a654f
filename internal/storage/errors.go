package storage

import pkgerrors "openfairdb/pkg/errors"

var (
	// ErrNotFound keeps storage-specific 404s consistent across in-memory and
	// future implementations.
	ErrNotFound = pkgerrors.New(pkgerrors.CodeNotFound, "record not found")

	// ErrVersionConflict signals a revision number that does not follow the
	// currently stored one.
	ErrVersionConflict = pkgerrors.New(pkgerrors.CodeConflict, "revision conflict")
)
