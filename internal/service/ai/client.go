// Package ai is the boundary to the external generative-text oracle.
// Callers get back plain text; anything structured in the reply is
// parsed and validated by the consumer, never trusted here.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/chapterchill/bookstore-service/pkg/circuitbreaker"
)

type Config struct {
	BaseURL string `envconfig:"AI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	Model   string `envconfig:"AI_MODEL" default:"gemini-flash-lite-latest"`
	APIKey  string `envconfig:"AI_API_KEY"`
}

type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Client struct {
	cfg    Config
	client *http.Client
	cb     circuitbreaker.CircuitBreaker
	log    *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Minute,
		},
		cb:  circuitbreaker.New(10, 30*time.Second, 0.5, 2),
		log: log.Named("ai"),
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.New("AI api key is not configured")
	}

	var out string
	err := c.cb.Call(func() error {
		text, err := c.generate(ctx, prompt)
		if err != nil {
			return err
		}
		out = text
		return nil
	})
	return out, err
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10)) //nolint:errcheck
		c.log.Warn("oracle request failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", data))
		return "", errors.Errorf("oracle returned status %d", resp.StatusCode)
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return "", err
	}
	if len(gen.Candidates) == 0 || len(gen.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("oracle returned an empty response")
	}
	return gen.Candidates[0].Content.Parts[0].Text, nil
}
