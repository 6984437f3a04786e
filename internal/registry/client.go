package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jackcharlielopez/forge-cli/internal/errors"
)

// Client fetches a published registry document over HTTP. The search
// command uses it when a registry URL is configured, falling back to
// the local build otherwise.
type Client struct {
	url    string
	client *http.Client
	cached *Registry
}

// NewClient creates a client for the given registry URL.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch downloads and parses the registry document. The result is
// cached for the lifetime of the client.
func (c *Client) Fetch(ctx context.Context) (*Registry, error) {
	if c.cached != nil {
		return c.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.url, nil)
	if err != nil {
		return nil, errors.New("E504").Wrap(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.New("E504").
			WithDetail("Could not connect to registry: " + err.Error()).
			WithSuggestion("Check your internet connection and the registry URL in forge.json")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("E504").
			WithDetail(fmt.Sprintf("Registry returned status %d", resp.StatusCode))
	}

	var reg Registry
	if err := json.NewDecoder(resp.Body).Decode(&reg); err != nil {
		return nil, errors.New("E504").
			WithDetail("Invalid registry document: " + err.Error())
	}

	c.cached = &reg
	return c.cached, nil
}

// Search returns the components whose name, display name, description,
// or tags contain the query, case-insensitively. An empty query
// matches everything.
func Search(reg *Registry, query string) []int {
	q := strings.ToLower(query)
	var matches []int
	for i, c := range reg.Components {
		if q == "" ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.DisplayName), q) ||
			strings.Contains(strings.ToLower(c.Description), q) ||
			tagMatch(c.Tags, q) {
			matches = append(matches, i)
		}
	}
	return matches
}

func tagMatch(tags []string, q string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
