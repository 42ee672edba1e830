// Package ddb is the client for the D&D Beyond proxy API
package ddb

//go:generate mockgen -destination=mock/mock_client.go -package=ddbmock github.com/KirkDiggler/ddb-importer/internal/clients/ddb Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	ddbentities "github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// Proxy resources
const (
	resourceEncounters  = "encounters"
	resourceCampaigns   = "campaigns"
	resourceClassSpells = "class/spells"
)

// Client defines the calls made to the proxy API
type Client interface {
	// ListEncounters returns every encounter the user can see
	ListEncounters(ctx context.Context) ([]*ddbentities.Encounter, error)

	// ListCampaigns returns the campaigns the user belongs to
	ListCampaigns(ctx context.Context) ([]*ddbentities.Campaign, error)

	// ListClassSpells returns the spell list of a class, including the
	// campaign's homebrew when a campaign is given
	ListClassSpells(ctx context.Context, input *ListClassSpellsInput) ([]*ddbentities.Spell, error)
}

// ListClassSpellsInput selects a class spell list
type ListClassSpellsInput struct {
	ClassName  string
	CampaignID string
}

// Config contains configuration options for the proxy client
type Config struct {
	// Endpoint of the proxy API (required)
	Endpoint string
	// Cobalt is the session cookie forwarded to the character service (required)
	Cobalt string
	// BetaKey unlocks patron features (optional)
	BetaKey string
	// HTTPClient overrides the default client (optional)
	HTTPClient *http.Client
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// DebugDir receives the raw responses when set (optional)
	DebugDir string
	// CacheSize bounds the response cache (optional, defaults to 64)
	CacheSize int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Endpoint == "" {
		vb.RequiredField("Endpoint")
	}
	if cfg.Cobalt == "" {
		vb.RequiredField("Cobalt")
	}
	if cfg.CacheSize < 0 {
		vb.Field("CacheSize", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = 64
	}
	return nil
}

type client struct {
	endpoint   string
	cobalt     string
	betaKey    string
	debugDir   string
	httpClient *http.Client
	cache      *lru.Cache[string, json.RawMessage]
}

// New creates a new proxy client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	cache, err := lru.New[string, json.RawMessage](cfg.CacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create response cache")
	}

	return &client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		cobalt:     cfg.Cobalt,
		betaKey:    cfg.BetaKey,
		debugDir:   cfg.DebugDir,
		httpClient: httpClient,
		cache:      cache,
	}, nil
}

// response is the envelope every proxy call answers with
type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *client) ListEncounters(ctx context.Context) ([]*ddbentities.Encounter, error) {
	var encounters []*ddbentities.Encounter
	if err := c.call(ctx, resourceEncounters, nil, &encounters); err != nil {
		return nil, err
	}
	slog.Info("Retrieved encounters", "count", len(encounters))
	return encounters, nil
}

func (c *client) ListCampaigns(ctx context.Context) ([]*ddbentities.Campaign, error) {
	var campaigns []*ddbentities.Campaign
	if err := c.call(ctx, resourceCampaigns, nil, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (c *client) ListClassSpells(ctx context.Context, input *ListClassSpellsInput) ([]*ddbentities.Spell, error) {
	if input == nil || input.ClassName == "" {
		return nil, errors.InvalidArgument("class name is required")
	}

	params := map[string]any{
		"className":  input.ClassName,
		"campaignId": input.CampaignID,
	}

	var spells []*ddbentities.Spell
	if err := c.call(ctx, resourceClassSpells, params, &spells); err != nil {
		return nil, err
	}

	for _, s := range spells {
		s.Class = input.ClassName
		s.Lookup = ddbentities.LookupClassSpell
		s.Generic = true
	}
	slog.Info("Retrieved class spells",
		"class", input.ClassName,
		"campaign_id", input.CampaignID,
		"count", len(spells),
	)
	return spells, nil
}

// call posts to a proxy resource and decodes its data into out. Successful
// responses are cached per resource and parameters.
func (c *client) call(ctx context.Context, resource string, params map[string]any, out any) error {
	key, err := cacheKey(resource, params)
	if err != nil {
		return err
	}

	if data, ok := c.cache.Get(key); ok {
		slog.Debug("Proxy cache hit", "resource", resource)
		return decode(resource, data, out)
	}

	data, err := c.post(ctx, resource, params)
	if err != nil {
		return err
	}
	if err := decode(resource, data, out); err != nil {
		return err
	}

	c.cache.Add(key, data)
	return nil
}

func (c *client) post(ctx context.Context, resource string, params map[string]any) (json.RawMessage, error) {
	body := map[string]any{
		"cobalt":  c.cobalt,
		"betaKey": c.betaKey,
	}
	for k, v := range params {
		body[k] = v
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s request", resource)
	}

	url := fmt.Sprintf("%s/proxy/%s", c.endpoint, resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s request", resource)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("proxy %s request failed", resource))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if code := errors.CodeFromHTTPStatus(resp.StatusCode); code != errors.CodeOK {
		return nil, errors.Newf(code, "proxy %s returned status %d", resource, resp.StatusCode).
			WithMeta("resource", resource).
			WithMeta("status", resp.StatusCode)
	}

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s response", resource)
	}

	c.dump(resource, envelope)

	if !envelope.Success {
		return nil, errors.Unavailablef("API Failure: %s", envelope.Message).
			WithMeta("resource", resource)
	}
	return envelope.Data, nil
}

// dump writes the raw response to the debug directory
func (c *client) dump(resource string, envelope response) {
	if c.debugDir == "" {
		return
	}

	raw, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		slog.Warn("Failed to encode debug response", "resource", resource, "error", err)
		return
	}

	name := strings.ReplaceAll(resource, "/", "-") + "-raw.json"
	path := filepath.Join(c.debugDir, name)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		slog.Warn("Failed to write debug response", "path", path, "error", err)
		return
	}
	slog.Debug("Wrote debug response", "path", path)
}

func decode(resource string, data json.RawMessage, out any) error {
	if len(data) == 0 {
		data = json.RawMessage("[]")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s data", resource)
	}
	return nil
}

func cacheKey(resource string, params map[string]any) (string, error) {
	if len(params) == 0 {
		return resource, nil
	}
	// map keys are marshalled in sorted order
	raw, err := json.Marshal(params)
	if err != nil {
		return "", errors.Wrapf(err, "failed to build cache key for %s", resource)
	}
	return resource + ":" + string(raw), nil
}
