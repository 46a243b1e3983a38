package repository

import "errors"

var (
	ErrNotFound          = errors.New("mindmap repository: not found")
	ErrInvalidInput      = errors.New("mindmap repository: invalid input")
	ErrFailedToInsert    = errors.New("mindmap repository: failed to insert")
	ErrFailedToGet       = errors.New("mindmap repository: failed to get")
	ErrFailedToList      = errors.New("mindmap repository: failed to list")
	ErrFailedToDelete    = errors.New("mindmap repository: failed to delete")
	ErrFailedToCount     = errors.New("mindmap repository: failed to count")
	ErrUnknownParent     = errors.New("mindmap repository: node references unknown parent")
	ErrCacheMiss         = errors.New("mindmap repository: cache miss")
	ErrFailedToIndex     = errors.New("mindmap repository: failed to index nodes")
	ErrFailedToSearch    = errors.New("mindmap repository: failed to search nodes")
	ErrFailedToDeleteIdx = errors.New("mindmap repository: failed to delete indexed nodes")
)
