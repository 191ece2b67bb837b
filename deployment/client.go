package deployment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned when the named engine does not exist.
var ErrNotFound = errors.New("agent engine not found")

// DefaultEndpoint is the agent engine service the client talks to unless
// AGENT_ENGINE_ENDPOINT overrides it.
const DefaultEndpoint = "https://aiplatform.googleapis.com"

// Engine is one deployed agent application.
type Engine struct {
	// Name is the full resource name:
	// projects/{project}/locations/{location}/reasoningEngines/{id}
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	CreateTime  time.Time `json:"createTime"`
	UpdateTime  time.Time `json:"updateTime"`
}

// ResourceID returns the trailing ID segment of the resource name.
func (e Engine) ResourceID() string {
	if idx := strings.LastIndex(e.Name, "/"); idx != -1 {
		return e.Name[idx+1:]
	}
	return e.Name
}

// Client manages agent engine deployments for one project and location.
type Client struct {
	endpoint string
	project  string
	location string
	http     *httpClient
	log      zerolog.Logger
}

// ClientConfig configures a deployment client.
type ClientConfig struct {
	// Endpoint overrides DefaultEndpoint, mainly for tests.
	Endpoint string
	Project  string
	Location string
	Options  ClientOptions
	Logger   zerolog.Logger
}

// NewClient creates a deployment client.
func NewClient(cfg ClientConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		project:  cfg.Project,
		location: cfg.Location,
		http:     newHTTPClient(cfg.Options),
		log:      cfg.Logger,
	}
}

func (c *Client) collectionURL() string {
	return fmt.Sprintf("%s/v1/projects/%s/locations/%s/reasoningEngines",
		c.endpoint, c.project, c.location)
}

// Create deploys a new engine from the manifest and returns the created
// resource.
func (c *Client) Create(ctx context.Context, m Manifest) (*Engine, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	c.log.Info().Str("display_name", m.DisplayName).Msg("creating agent engine")
	resp, err := c.http.do(ctx, http.MethodPost, c.collectionURL(), body)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	var engine Engine
	if err := json.NewDecoder(resp.Body).Decode(&engine); err != nil {
		return nil, fmt.Errorf("decode engine: %w", err)
	}
	c.log.Info().Str("resource", engine.Name).Msg("agent engine created")
	return &engine, nil
}

// List returns all engines in the project and location.
func (c *Client) List(ctx context.Context) ([]Engine, error) {
	resp, err := c.http.do(ctx, http.MethodGet, c.collectionURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("list engines: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	var payload struct {
		ReasoningEngines []Engine `json:"reasoningEngines"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode engine list: %w", err)
	}
	return payload.ReasoningEngines, nil
}

// Delete removes an engine by resource ID. Child resources are deleted
// along with it.
func (c *Client) Delete(ctx context.Context, resourceID string) error {
	if resourceID == "" {
		return fmt.Errorf("resource ID is required")
	}

	url := c.collectionURL() + "/" + resourceID + "?force=true"
	resp, err := c.http.do(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("delete engine %s: %w", resourceID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("engine %s: %w", resourceID, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp)
	}
	c.log.Info().Str("resource_id", resourceID).Msg("agent engine deleted")
	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return fmt.Errorf("agent engine service returned %d: %s", resp.StatusCode, msg)
}
