package util

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCareerGoalNotFound = errors.New("career goal not found")
	ErrEmptyAdvice        = errors.New("advice text must not be empty")
)
