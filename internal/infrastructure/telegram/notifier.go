package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"SignalScanner/internal/ports"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	// ParseMode is the Bot API formatting the digest is written in.
	ParseMode = "HTML"
)

// ErrNotConfigured is returned when the bot token or chat is missing.
var ErrNotConfigured = errors.New("telegram notifier misconfigured")

// Notifier delivers scan digests to one Telegram chat through the Bot API.
type Notifier struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
}

var _ ports.Notifier = (*Notifier)(nil)

// apiResponse is the envelope every Bot API method answers with.
type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// NewNotifier targets chatID with the bot identified by botToken.
func NewNotifier(botToken, chatID string) *Notifier {
	return &Notifier{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  defaultAPIBase,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// WithAPIBase points the notifier at a different Bot API host.
func (n *Notifier) WithAPIBase(base string) *Notifier {
	n.apiBase = strings.TrimSuffix(base, "/")
	return n
}

// PublishDigest sends an HTML-formatted digest with link previews disabled.
func (n *Notifier) PublishDigest(ctx context.Context, digest string) error {
	if n.botToken == "" || n.chatID == "" || n.client == nil {
		return ErrNotConfigured
	}

	form := url.Values{
		"chat_id":                  {n.chatID},
		"text":                     {digest},
		"parse_mode":               {ParseMode},
		"disable_web_page_preview": {"true"},
	}
	return n.call(ctx, "sendMessage", form)
}

func (n *Notifier) call(ctx context.Context, method string, form url.Values) error {
	endpoint := fmt.Sprintf("%s/bot%s/%s", n.apiBase, n.botToken, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		// the token is part of the URL; keep it out of the error
		return fmt.Errorf("telegram %s: %w", method, errors.Unwrap(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("telegram %s: read response: %w", method, err)
	}

	var parsed apiResponse
	if jsonErr := json.Unmarshal(body, &parsed); jsonErr != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("telegram %s: %s", method, resp.Status)
		}
		return fmt.Errorf("telegram %s: decode response: %w", method, jsonErr)
	}
	if resp.StatusCode != http.StatusOK || !parsed.OK {
		return fmt.Errorf("telegram %s: %s (%d %s)", method, resp.Status, parsed.ErrorCode, parsed.Description)
	}
	return nil
}
