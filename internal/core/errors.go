package core

import "errors"

var (
	// ErrAborted is returned when the user cancels an interactive flow.
	ErrAborted = errors.New("aborted")

	// ErrUnknownDevEnv is returned when a named environment does not exist.
	ErrUnknownDevEnv = errors.New("unknown Development Environment")

	// ErrDevEnvExists is returned when saving under a name that is taken.
	ErrDevEnvExists = errors.New("the Development Environment already exists")

	// ErrNoContainerEngine is returned when the container client is not on PATH.
	ErrNoContainerEngine = errors.New("container engine not found")
)
