package domain

import "errors"

var (
	ErrNoRemotes          = errors.New("no configured remote found")
	ErrRemoteNotFound     = errors.New("remote not found")
	ErrRepositoryNotFound = errors.New("git repository not found")
)
