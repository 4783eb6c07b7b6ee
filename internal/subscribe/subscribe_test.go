package subscribe

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/matheuskafuri/grid7/internal/ai"
	"github.com/matheuskafuri/grid7/internal/news"
)

type fakeGenerator struct {
	text string
	err  error
}

func (g fakeGenerator) Generate(ctx context.Context, prompt string, search bool) (ai.Response, error) {
	return ai.Response{Text: g.text}, g.err
}

type fakeDispatcher struct {
	err     error
	address string
	body    string
	calls   int
}

func (d *fakeDispatcher) Send(ctx context.Context, address, body string) error {
	d.calls++
	d.address = address
	d.body = body
	return d.err
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func articles() []news.Article {
	return []news.Article{
		{Title: "One", Summary: "first"},
		{Title: "Two", Summary: "second"},
		{Title: "Three", Summary: "third"},
		{Title: "Four", Summary: "fourth"},
	}
}

func TestValidAddress(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"operative@grid7.net", true},
		{"  operative@grid7.net  ", true},
		{"", false},
		{"   ", false},
		{"not-an-email", false},
		{"Operative <operative@grid7.net>", false},
	}
	for _, tt := range tests {
		if got := ValidAddress(tt.in); got != tt.want {
			t.Errorf("ValidAddress(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSubmitSuccess(t *testing.T) {
	d := &fakeDispatcher{}
	f := New(fakeGenerator{text: "Hello operative."}, d, quietLogger())

	var phases []Phase
	f.OnChange(func(s Status) { phases = append(phases, s.Phase) })

	if err := f.Submit(context.Background(), "a@b.co", articles()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	want := []Phase{Generating, Sending, Sent}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("phase %d = %s, want %s", i, phases[i], want[i])
		}
	}
	if d.address != "a@b.co" || d.body != "Hello operative." {
		t.Errorf("unexpected dispatch: %q %q", d.address, d.body)
	}
	if f.Status().Phase != Sent {
		t.Errorf("final phase = %s", f.Status().Phase)
	}
}

func TestSubmitInvalidAddressStaysIdle(t *testing.T) {
	d := &fakeDispatcher{}
	f := New(nil, d, quietLogger())

	var transitions int
	f.OnChange(func(Status) { transitions++ })

	for _, addr := range []string{"", "nope"} {
		if err := f.Submit(context.Background(), addr, articles()); !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("Submit(%q): expected ErrInvalidAddress, got %v", addr, err)
		}
	}
	if transitions != 0 || d.calls != 0 || f.Status().Phase != Idle {
		t.Errorf("invalid address must not leave Idle (transitions=%d calls=%d)", transitions, d.calls)
	}
}

func TestSubmitGenerationFallsBack(t *testing.T) {
	d := &fakeDispatcher{}
	f := New(fakeGenerator{err: errors.New("quota")}, d, quietLogger())

	if err := f.Submit(context.Background(), "a@b.co", articles()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !strings.HasPrefix(d.body, "Welcome to Grid7.") {
		t.Errorf("expected fallback body, got %q", d.body)
	}
	if !strings.Contains(d.body, "- Three: third") || strings.Contains(d.body, "Four") {
		t.Errorf("fallback should list exactly the top three stories: %q", d.body)
	}
}

func TestSubmitWithoutGenerator(t *testing.T) {
	d := &fakeDispatcher{}
	f := New(nil, d, quietLogger())
	if err := f.Submit(context.Background(), "a@b.co", nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if d.body != "Welcome to Grid7.\n\nTop Stories:\n\n\nStay Plugged In." {
		t.Errorf("unexpected body %q", d.body)
	}
}

func TestSubmitDispatchFailureAndRetry(t *testing.T) {
	d := &fakeDispatcher{err: errors.New("400 bad request")}
	f := New(nil, d, quietLogger())

	if err := f.Submit(context.Background(), "a@b.co", articles()); err == nil {
		t.Fatal("expected dispatch error")
	}
	st := f.Status()
	if st.Phase != Failed || st.Message != FailureMessage {
		t.Errorf("unexpected status %+v", st)
	}

	// Busy until retried.
	if err := f.Submit(context.Background(), "a@b.co", articles()); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy before retry, got %v", err)
	}

	f.Retry()
	if f.Status().Phase != Idle {
		t.Errorf("Retry should return to Idle, got %s", f.Status().Phase)
	}

	d.err = nil
	if err := f.Submit(context.Background(), "a@b.co", articles()); err != nil {
		t.Errorf("Submit after retry: %v", err)
	}
}

func TestRetryOnlyFromFailed(t *testing.T) {
	f := New(nil, &fakeDispatcher{}, quietLogger())
	f.Submit(context.Background(), "a@b.co", nil)
	f.Retry()
	if f.Status().Phase != Sent {
		t.Errorf("Retry must not leave Sent, got %s", f.Status().Phase)
	}
	f.Reset()
	if f.Status().Phase != Idle {
		t.Errorf("Reset should return to Idle, got %s", f.Status().Phase)
	}
}

func TestPhaseString(t *testing.T) {
	if Failed.String() != "error" || Phase(9).String() != "unknown" {
		t.Error("unexpected Phase strings")
	}
}
