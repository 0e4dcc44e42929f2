// Package ollama asks a local Ollama model to pick a catalog code for a
// free-text prompt. The heuristic engine stays authoritative: any failure
// here (daemon down, malformed reply, unknown code) falls back silently.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultHost is the stock Ollama listen address.
	DefaultHost = "http://localhost:11434"

	// DefaultModel matches the model the original backend shipped with.
	DefaultModel = "llama3.1:8b"
)

// Client calls Ollama's generate API.
type Client struct {
	host   string
	model  string
	client *http.Client
}

// New creates a client. Empty host/model fall back to the defaults.
func New(host, model string, timeout time.Duration) *Client {
	if host == "" {
		host = DefaultHost
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		host:   strings.TrimRight(host, "/"),
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

type generateReq struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type generateResp struct {
	Response string `json:"response"`
}

// Generate sends one non-streaming, temperature-0 completion request.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(generateReq{
		Model:   c.model,
		Prompt:  prompt,
		Stream:  false,
		Options: map[string]any{"temperature": 0},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama generate: status %d", resp.StatusCode)
	}

	var parsed generateResp
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("ollama decode: %w", err)
	}
	return parsed.Response, nil
}

// Pick is the model's structured answer.
type Pick struct {
	Code       string  `json:"code"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// jsonObjRe finds the first JSON object in a model reply, which routinely
// wraps the object in prose or code fences.
var jsonObjRe = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractPick parses the first JSON object out of a raw model reply.
// Returns false when no usable object (or no code) is present.
func ExtractPick(reply string) (Pick, bool) {
	if reply == "" {
		return Pick{}, false
	}
	match := jsonObjRe.FindString(reply)
	if match == "" {
		return Pick{}, false
	}
	var p Pick
	if err := json.Unmarshal([]byte(match), &p); err != nil {
		return Pick{}, false
	}
	p.Code = strings.TrimSpace(p.Code)
	if p.Code == "" || p.Code == "null" {
		return Pick{}, false
	}
	return p, true
}

// PickCode asks the model to choose one code from the catalog for the user
// text. catalog is "code: label" pairs joined with "; ".
func (c *Client) PickCode(ctx context.Context, catalog, userText string) (Pick, error) {
	prompt := "You classify a short work description into an industry code for selecting protective gloves.\n" +
		"Choose exactly one code from the catalog below. Respond with compact JSON only.\n" +
		"Catalog: " + catalog + "\n" +
		"Rules: If unsure, return code=null and confidence=0. Include a short reason.\n" +
		"User: " + userText

	reply, err := c.Generate(ctx, prompt)
	if err != nil {
		return Pick{}, err
	}
	p, ok := ExtractPick(reply)
	if !ok {
		return Pick{}, fmt.Errorf("ollama: no usable pick in reply")
	}
	return p, nil
}
