package tui

import (
	"github.com/matheuskafuri/grid7/internal/refresh"
	"github.com/matheuskafuri/grid7/internal/subscribe"
)

type splashDoneMsg struct{}

type refreshDoneMsg struct {
	outcome refresh.Outcome
	err     error
}

type subscribeStatusMsg struct {
	status subscribe.Status
}

type subscribeDoneMsg struct {
	err error
}

// noticeMsg is a transient one-line message for the status bar.
type noticeMsg struct {
	text string
}

type errMsg struct {
	err error
}
