package domain

import "errors"

var (
	ErrProjectNameRequired = errors.New("projectName is required")
	ErrProjectNotFound     = errors.New("project not found")
)
