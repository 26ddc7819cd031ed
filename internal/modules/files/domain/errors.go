package domain

import "errors"

var (
	ErrFileNotFound        = errors.New("file not found")
	ErrDuplicateStoredName = errors.New("stored name already exists")
	ErrUsernameRequired    = errors.New("username is required")
	ErrFileRequired        = errors.New("file is required")
)
