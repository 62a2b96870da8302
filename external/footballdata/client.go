package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"github.com/riskibarqy/match-predictor/internal/platform/resilience"
	"github.com/riskibarqy/match-predictor/internal/usecase"
)

const (
	defaultBaseURL   = "https://api.football-data.org/v4"
	authHeader       = "X-Auth-Token"
	maxResponseBytes = 4 << 20
)

var (
	errTransient   = crerr.New("football-data transient failure")
	errUnavailable = crerr.New("football-data is temporarily unavailable")
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Timeout    time.Duration
	MaxRetries int
	// RetryBackoff is multiplied by the attempt number between retries.
	RetryBackoff time.Duration
	Breaker      resilience.BreakerConfig
	Logger       *logging.Logger
}

// Client reads teams and finished matches from the football-data.org v4 API.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	token        string
	maxRetries   int
	retryBackoff time.Duration
	breaker      *resilience.Breaker
	flight       resilience.Group[[]byte]
	logger       *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		token:        strings.TrimSpace(cfg.Token),
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		breaker:      cfg.Breaker.Normalize().NewBreaker(),
		logger:       logger,
	}
}

func (c *Client) ListCompetitionTeams(ctx context.Context, competition string) ([]usecase.ExternalTeam, error) {
	code := strings.ToUpper(strings.TrimSpace(competition))
	if code == "" {
		return nil, fmt.Errorf("competition code is required")
	}

	var payload teamsEnvelope
	if err := c.getJSON(ctx, "/competitions/"+url.PathEscape(code)+"/teams", nil, &payload); err != nil {
		return nil, crerr.Wrapf(err, "list teams competition=%s", code)
	}

	out := make([]usecase.ExternalTeam, 0, len(payload.Teams))
	for _, team := range payload.Teams {
		name := strings.TrimSpace(team.Name)
		if team.ID <= 0 || name == "" {
			continue
		}
		out = append(out, usecase.ExternalTeam{ID: team.ID, Name: name})
	}
	return out, nil
}

func (c *Client) ListTeamMatches(ctx context.Context, teamID int64, limit int) ([]usecase.ExternalMatch, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("team id must be greater than zero")
	}

	query := url.Values{}
	query.Set("status", "FINISHED")
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var payload matchesEnvelope
	path := "/teams/" + strconv.FormatInt(teamID, 10) + "/matches"
	if err := c.getJSON(ctx, path, query, &payload); err != nil {
		return nil, crerr.Wrapf(err, "list matches team_id=%d", teamID)
	}

	out := make([]usecase.ExternalMatch, 0, len(payload.Matches))
	for _, item := range payload.Matches {
		out = append(out, item.toExternal())
	}
	return out, nil
}

// IsTransient reports whether err came from a failure worth retrying later.
func IsTransient(err error) bool {
	return crerr.Is(err, errTransient) || crerr.Is(err, errUnavailable)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "football-data circuit breaker rejected request", "state", c.breaker.State())
		return crerr.Mark(crerr.Wrap(err, "football-data request rejected"), errUnavailable)
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err, _ := c.flight.Do(fullURL, func() ([]byte, error) {
		body, reqErr := c.execute(ctx, fullURL)
		if reqErr != nil && crerr.Is(reqErr, errTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return body, reqErr
	})
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode football-data payload")
	}
	return nil
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set(authHeader, c.token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Mark(crerr.Wrap(err, "send request"), errTransient)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Mark(crerr.Wrap(readErr, "read response body"), errTransient)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Mark(crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw)), errTransient)
			default:
				return nil, crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "football-data request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
