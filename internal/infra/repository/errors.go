package repository

import "errors"

var (
	ErrRedisConnection     = errors.New("redis connection error")
	ErrInvalidSnapshotData = errors.New("invalid snapshot data")
)
