package ui

import (
	"tunetutor/internal/tasks"
)

type discoveryProgressMsg tasks.ProgressUpdate

type discoveryCompleteMsg struct {
	result *tasks.DiscoveryRunResult
	err    error
}

type themeSavedMsg struct {
	theme string
	err   error
}
