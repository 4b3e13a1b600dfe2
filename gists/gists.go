package gists

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/iter"

	"portfolio/constants"
)

const (
	DefaultBaseURL     = "https://api.github.com"
	contentUnavailable = "// Content not available"
)

type File struct {
	Filename string `json:"filename"`
	Language string `json:"language"`
	Content  string `json:"content"`
	Size     int    `json:"size"`
}

type Gist struct {
	ID          string          `json:"id"`
	URL         string          `json:"url,omitempty"`
	Description string          `json:"description"`
	Files       map[string]File `json:"files"`
	Public      bool            `json:"public"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	HTMLURL     string          `json:"html_url"`
	Comments    int             `json:"comments"`
	Forks       int             `json:"forks"`
}

// Client reads public gists from the GitHub REST API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	Logger     logrus.FieldLogger
}

func NewClient(baseURL string, timeout time.Duration, logger logrus.FieldLogger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  constants.GISTS_USER_AGENT,
		Logger:     logger,
	}
}

// ListGists fetches the user's gists, then every gist's full content in
// parallel. A gist whose detail request fails in transit is dropped; one
// answered with an error status keeps its summary without file contents.
func (c *Client) ListGists(ctx context.Context, username string) ([]Gist, error) {
	if username == "" {
		username = constants.GISTS_DEFAULT_USER
	}

	var summaries []Gist
	listURL := fmt.Sprintf("%s/users/%s/gists", c.BaseURL, url.PathEscape(username))
	status, err := c.getJSON(ctx, listURL, &summaries)
	if err != nil {
		return nil, fmt.Errorf("list gists: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("GitHub API error: %d", status)
	}

	detailed := iter.Map(summaries, func(summary *Gist) *Gist {
		return c.fetchGist(ctx, *summary)
	})

	gists := make([]Gist, 0, len(detailed))
	for _, g := range detailed {
		if g != nil {
			gists = append(gists, *g)
		}
	}
	return gists, nil
}

func (c *Client) fetchGist(ctx context.Context, summary Gist) *Gist {
	detailURL := summary.URL
	if detailURL == "" {
		detailURL = fmt.Sprintf("%s/gists/%s", c.BaseURL, url.PathEscape(summary.ID))
	}

	var full Gist
	status, err := c.getJSON(ctx, detailURL, &full)
	if err != nil {
		c.logger().WithError(err).WithField("gist_id", summary.ID).Warn("dropping gist")
		return nil
	}
	if status != http.StatusOK {
		fallback := normalize(summary)
		for name, f := range fallback.Files {
			f.Content = contentUnavailable
			fallback.Files[name] = f
		}
		return &fallback
	}

	full = normalize(full)
	return &full
}

func (c *Client) getJSON(ctx context.Context, target string, v any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", c.UserAgent)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return resp.StatusCode, fmt.Errorf("decode %s: %w", target, err)
	}
	return resp.StatusCode, nil
}

func (c *Client) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}

func normalize(g Gist) Gist {
	if g.Description == "" {
		g.Description = "No description"
	}
	files := make(map[string]File, len(g.Files))
	for name, f := range g.Files {
		if f.Language == "" {
			f.Language = "text"
		}
		files[name] = f
	}
	g.Files = files
	// the gists API does not report forks
	g.Forks = 0
	return g
}

type Totals struct {
	Count    int
	Files    int
	Forks    int
	Comments int
}

func Summarize(gists []Gist) Totals {
	var t Totals
	for _, g := range gists {
		t.Count++
		t.Files += len(g.Files)
		t.Forks += g.Forks
		t.Comments += g.Comments
	}
	return t
}
