package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matheuskafuri/grid7/internal/config"
)

const defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Dispatcher delivers a message body to an email address.
type Dispatcher interface {
	Send(ctx context.Context, address, body string) error
}

// EmailJS sends through the EmailJS REST API. Without a public key it runs
// in demo mode and reports success without sending anything.
type EmailJS struct {
	cfg    config.MailConfig
	client *http.Client
	logger *log.Logger
}

func NewEmailJS(cfg *config.MailConfig, logger *log.Logger) *EmailJS {
	if logger == nil {
		logger = log.Default()
	}
	var c config.MailConfig
	if cfg != nil {
		c = *cfg
	}
	if c.Endpoint == "" {
		c.Endpoint = defaultEndpoint
	}
	return &EmailJS{
		cfg:    c,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger.WithPrefix("mail"),
	}
}

// Demo reports whether messages are simulated.
func (e *EmailJS) Demo() bool {
	return strings.TrimSpace(e.cfg.PublicKey) == ""
}

type emailRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (e *EmailJS) Send(ctx context.Context, address, body string) error {
	if e.Demo() {
		e.logger.Warn("public key not configured, simulating send", "to", address)
		return nil
	}

	payload, err := json.Marshal(emailRequest{
		ServiceID:  e.cfg.ServiceID,
		TemplateID: e.cfg.TemplateID,
		UserID:     e.cfg.PublicKey,
		TemplateParams: map[string]string{
			"to_email": address,
			"message":  body,
			"reply_to": e.cfg.ReplyTo,
		},
	})
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	e.logger.Info("newsletter sent", "to", address)
	return nil
}
