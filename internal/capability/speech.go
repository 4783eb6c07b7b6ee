package capability

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/matheuskafuri/grid7/internal/news"
)

// Handle identifies one utterance.
type Handle uint64

// Speaker reads text aloud.
type Speaker interface {
	Speak(text string) (Handle, error)
	Cancel(h Handle) error
	Active(h Handle) bool
}

// SpeechText is what gets read for an article.
func SpeechText(a news.Article) string {
	return a.Title + ". " + a.Summary
}

var speechCommands = [][]string{
	{"say"},
	{"espeak"},
	{"spd-say", "--wait"},
}

// CommandSpeaker speaks through the first text-to-speech command found on
// PATH.
type CommandSpeaker struct {
	argv []string

	mu      sync.Mutex
	next    Handle
	running map[Handle]*exec.Cmd
}

// NewCommandSpeaker returns ErrUnsupported when no speech command exists.
func NewCommandSpeaker() (*CommandSpeaker, error) {
	for _, argv := range speechCommands {
		if _, err := exec.LookPath(argv[0]); err == nil {
			return &CommandSpeaker{argv: argv, running: map[Handle]*exec.Cmd{}}, nil
		}
	}
	return nil, ErrUnsupported
}

func (s *CommandSpeaker) Speak(text string) (Handle, error) {
	args := append(append([]string{}, s.argv[1:]...), text)
	cmd := exec.Command(s.argv[0], args...)
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("starting %s: %w", s.argv[0], err)
	}

	s.mu.Lock()
	s.next++
	h := s.next
	s.running[h] = cmd
	s.mu.Unlock()

	go func() {
		_ = cmd.Wait()
		s.mu.Lock()
		delete(s.running, h)
		s.mu.Unlock()
	}()
	return h, nil
}

func (s *CommandSpeaker) Cancel(h Handle) error {
	s.mu.Lock()
	cmd, ok := s.running[h]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return cmd.Process.Kill()
}

func (s *CommandSpeaker) Active(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.running[h]
	return ok
}

// Narrator reads at most one article at a time. Toggling the article that
// is currently being read stops it.
type Narrator struct {
	speaker Speaker

	mu      sync.Mutex
	article string
	handle  Handle
}

func NewNarrator(s Speaker) *Narrator {
	return &Narrator{speaker: s}
}

// Toggle starts reading a, or stops it if a is already being read. It
// reports whether a is now being read.
func (n *Narrator) Toggle(a news.Article) (bool, error) {
	if n.speaker == nil {
		return false, ErrUnsupported
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.article != "" && n.speaker.Active(n.handle) {
		if err := n.speaker.Cancel(n.handle); err != nil {
			return false, err
		}
		if n.article == a.ID {
			n.article = ""
			return false, nil
		}
	}

	h, err := n.speaker.Speak(SpeechText(a))
	if err != nil {
		n.article = ""
		return false, err
	}
	n.article, n.handle = a.ID, h
	return true, nil
}

// Speaking reports whether the article with id is being read.
func (n *Narrator) Speaking(id string) bool {
	if n.speaker == nil {
		return false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.article == id && n.speaker.Active(n.handle)
}

// Stop cancels any reading in progress.
func (n *Narrator) Stop() error {
	if n.speaker == nil {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.article == "" {
		return nil
	}
	n.article = ""
	return n.speaker.Cancel(n.handle)
}
