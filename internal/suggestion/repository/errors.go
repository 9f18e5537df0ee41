package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToUpsert = errors.New("failed to upsert record")
	ErrFailedToLoad   = errors.New("failed to load reference vectors")
	ErrFailedToSave   = errors.New("failed to save reference vectors")
	ErrVectorSize     = errors.New("reference vectors have inconsistent dimensions")
)
