package leadsink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/primeasset/recruit-landing/pkg/models"
	"github.com/primeasset/recruit-landing/pkg/utils"
)

// SubmissionIDHeader carries a per-request UUID for log correlation
const SubmissionIDHeader = "X-Submission-ID"

// maxBodyBytes bounds the response body kept on a RejectedError
const maxBodyBytes = 512

// Mode controls how much of the endpoint's response is trusted
type Mode string

const (
	// ModeOpaque treats any dispatch without a transport error as delivered.
	// The response is read and discarded.
	ModeOpaque Mode = "opaque"
	// ModeAcknowledged requires a 2xx final status
	ModeAcknowledged Mode = "acknowledged"
)

// ParseMode converts a config value into a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeOpaque, ModeAcknowledged:
		return Mode(s), nil
	case "":
		return ModeOpaque, nil
	default:
		return "", fmt.Errorf("unknown delivery mode %q (want %q or %q)", s, ModeOpaque, ModeAcknowledged)
	}
}

// Receipt describes one dispatched submission
type Receipt struct {
	SubmissionID string
	StatusCode   int
	// Confirmed is false in opaque mode: the endpoint may still have
	// rejected the lead without us knowing
	Confirmed bool
}

// RejectedError is returned in acknowledged mode when the endpoint answers
// with a non-2xx status
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("lead endpoint rejected submission: status %d: %s", e.StatusCode, e.Body)
}

// Client defines the interface for delivering leads to the intake endpoint
type Client interface {
	Send(ctx context.Context, lead models.LeadSubmission) (Receipt, error)
}

type clientImpl struct {
	http     *resty.Client
	endpoint string
	mode     Mode
	logger   *slog.Logger
}

// Options configure a lead sink client
type Options struct {
	Endpoint string
	Mode     Mode
	// Timeout bounds one dispatch; zero leaves it to the caller's context
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewClient creates a new lead sink client
func NewClient(opts Options) (Client, error) {
	u, err := url.Parse(opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("error parsing lead endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("lead endpoint must be an absolute http(s) URL, got %q", opts.Endpoint)
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeOpaque
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("Content-Type", "application/json")

	return &clientImpl{
		http:     httpClient,
		endpoint: opts.Endpoint,
		mode:     mode,
		logger:   logger,
	}, nil
}

func (c *clientImpl) Send(ctx context.Context, lead models.LeadSubmission) (Receipt, error) {
	receipt := Receipt{SubmissionID: uuid.NewString()}

	payload, err := json.Marshal(lead)
	if err != nil {
		return receipt, fmt.Errorf("error creating payload: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(SubmissionIDHeader, receipt.SubmissionID).
		SetBody(payload).
		Post(c.endpoint)
	if err != nil {
		return receipt, fmt.Errorf("error sending lead: %w", err)
	}

	receipt.StatusCode = resp.StatusCode()
	c.logger.Debug("lead endpoint responded",
		slog.String("submission_id", receipt.SubmissionID),
		slog.String("phone_hash", utils.HashPhone(lead.Phone)),
		slog.Int("status", receipt.StatusCode),
		slog.String("mode", string(c.mode)),
	)

	if c.mode == ModeOpaque {
		return receipt, nil
	}

	if !resp.IsSuccess() {
		return receipt, &RejectedError{StatusCode: receipt.StatusCode, Body: truncate(resp.String(), maxBodyBytes)}
	}

	receipt.Confirmed = true
	return receipt, nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
