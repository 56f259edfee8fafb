package tasklist

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("task title is required")
	ErrNoUser        = errors.New("sign in to manage your task list")
)
