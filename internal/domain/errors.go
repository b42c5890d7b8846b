package domain

import "errors"

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrStaleSnapshot    = errors.New("a newer snapshot is already stored")
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
	ErrUnknownView      = errors.New("unknown view")
)
