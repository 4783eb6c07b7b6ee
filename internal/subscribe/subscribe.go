package subscribe

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/matheuskafuri/grid7/internal/ai"
	"github.com/matheuskafuri/grid7/internal/briefing"
	grid7mail "github.com/matheuskafuri/grid7/internal/mail"
	"github.com/matheuskafuri/grid7/internal/news"
)

var (
	ErrInvalidAddress = errors.New("invalid email address")
	ErrBusy           = errors.New("subscription already in progress")
)

// FailureMessage is shown when the dispatcher rejects a newsletter.
const FailureMessage = "Transmission failed. Server rejected the protocol."

type Phase int

const (
	Idle Phase = iota
	Generating
	Sending
	Sent
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Generating:
		return "generating"
	case Sending:
		return "sending"
	case Sent:
		return "sent"
	case Failed:
		return "error"
	default:
		return "unknown"
	}
}

// Status is a snapshot of the flow.
type Status struct {
	Phase   Phase
	Address string
	Message string
}

// Flow drives one subscriber signup: compose a newsletter, then send it.
type Flow struct {
	gen        ai.Generator // nil composes the fallback body
	dispatcher grid7mail.Dispatcher
	logger     *log.Logger

	mu        sync.Mutex
	status    Status
	observers []func(Status)
}

func New(gen ai.Generator, dispatcher grid7mail.Dispatcher, logger *log.Logger) *Flow {
	if logger == nil {
		logger = log.Default()
	}
	return &Flow{gen: gen, dispatcher: dispatcher, logger: logger.WithPrefix("subscribe")}
}

// OnChange registers fn to receive every transition. fn runs on the
// goroutine that caused the transition.
func (f *Flow) OnChange(fn func(Status)) {
	f.mu.Lock()
	f.observers = append(f.observers, fn)
	f.mu.Unlock()
}

func (f *Flow) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// ValidAddress reports whether s is a bare email address.
func ValidAddress(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// Submit composes a newsletter from the leading articles and sends it to
// address. An invalid address is rejected without leaving Idle.
func (f *Flow) Submit(ctx context.Context, address string, articles []news.Article) error {
	address = strings.TrimSpace(address)
	if !ValidAddress(address) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	f.mu.Lock()
	if f.status.Phase != Idle {
		f.mu.Unlock()
		return ErrBusy
	}
	f.mu.Unlock()

	f.set(Status{Phase: Generating, Address: address, Message: "AI Agent constructing briefing..."})
	body := f.compose(ctx, address, articles)

	f.set(Status{Phase: Sending, Address: address, Message: "Encrypting and transmitting via quantum link..."})
	if err := f.dispatcher.Send(ctx, address, body); err != nil {
		f.logger.Error("dispatch failed", "to", address, "err", err)
		f.set(Status{Phase: Failed, Address: address, Message: FailureMessage})
		return fmt.Errorf("sending newsletter: %w", err)
	}

	f.set(Status{Phase: Sent, Address: address, Message: "A secure briefing has been dispatched to " + address + "."})
	return nil
}

// Retry returns a failed flow to Idle. It is a no-op in any other phase.
func (f *Flow) Retry() {
	if f.Status().Phase == Failed {
		f.set(Status{Phase: Idle})
	}
}

// Reset returns a finished flow to Idle so the form can be reused.
func (f *Flow) Reset() {
	switch f.Status().Phase {
	case Sent, Failed:
		f.set(Status{Phase: Idle})
	}
}

func (f *Flow) compose(ctx context.Context, address string, articles []news.Article) string {
	lines := briefing.StoryLines(briefing.TopStories(articles, briefing.NewsletterStories))
	if f.gen == nil {
		return briefing.FallbackBody(lines)
	}
	body, err := ai.Newsletter(ctx, f.gen, address, lines)
	if err != nil {
		f.logger.Warn("newsletter generation failed, using fallback", "err", err)
		return briefing.FallbackBody(lines)
	}
	return body
}

func (f *Flow) set(s Status) {
	f.mu.Lock()
	f.status = s
	observers := append([]func(Status){}, f.observers...)
	f.mu.Unlock()
	for _, fn := range observers {
		fn(s)
	}
}
