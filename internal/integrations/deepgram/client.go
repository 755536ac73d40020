// Package deepgram transcribes recorded audio with the Deepgram
// pre-recorded REST endpoint.
package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/linskybing/catalyst/internal/domain/voice"
	"github.com/linskybing/catalyst/internal/integrations"
	"github.com/linskybing/catalyst/internal/metrics"
	"github.com/pkg/errors"
)

var ErrNoResults = errors.New("no transcription results returned")

const listenPath = "/v1/listen"

// listenParams are fixed; the service does not expose model selection.
var listenParams = url.Values{
	"model":        {"nova-2"},
	"smart_format": {"true"},
	"diarize":      {"true"},
	"punctuate":    {"true"},
	"paragraphs":   {"true"},
	"utterances":   {"true"},
	"language":     {"en"},
}

type Client struct {
	baseURL string
	apiKey  func() string
	http    *http.Client
}

func New(baseURL string, apiKey func() string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != nil && c.apiKey() != ""
}

type listenResponse struct {
	Metadata *struct {
		Duration float64 `json:"duration"`
		Channels int     `json:"channels"`
	} `json:"metadata"`
	Results *struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

func (c *Client) Transcribe(ctx context.Context, audio []byte, mimeType string) (out voice.Transcription, err error) {
	defer func() { metrics.ObserveTranscription(err) }()

	if !c.Configured() {
		return out, errors.Wrap(integrations.ErrMissingAPIKey, "DEEPGRAM_API_KEY")
	}
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	endpoint := c.baseURL + listenPath + "?" + listenParams.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(audio))
	if err != nil {
		return out, errors.Wrap(err, "build deepgram request")
	}
	req.Header.Set("Authorization", "Token "+c.apiKey())
	req.Header.Set("Content-Type", mimeType)

	log.Printf("[Deepgram] transcribing %d bytes (%s)", len(audio), mimeType)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return out, errors.Wrap(err, "deepgram request")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return out, fmt.Errorf("deepgram returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed listenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return out, errors.Wrap(err, "decode deepgram response")
	}
	if parsed.Results == nil || len(parsed.Results.Channels) == 0 {
		return out, ErrNoResults
	}
	alts := parsed.Results.Channels[0].Alternatives
	if len(alts) == 0 {
		return out, errors.Wrap(ErrNoResults, "no transcript alternatives found")
	}

	out.Transcript = alts[0].Transcript
	out.Metadata.Channels = 1
	if parsed.Metadata != nil {
		out.Metadata.Duration = parsed.Metadata.Duration
		out.Metadata.Channels = parsed.Metadata.Channels
	}
	log.Printf("[Deepgram] transcript of %d chars in %s", len(out.Transcript), time.Since(start).Round(time.Millisecond))
	return out, nil
}

var _ integrations.Transcriber = (*Client)(nil)
