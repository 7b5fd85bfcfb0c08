package synthesizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/brand-snap/internal/config"
	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/utils"
)

// DefaultEndpoint is the generateContent URL of the image model.
const DefaultEndpoint = config.DefaultSynthesizerEndpoint

// Client calls the image model over HTTP. It is safe for concurrent use.
type Client struct {
	client   *utils.HTTPClient
	endpoint string
	apiKey   string

	surfaceErrors bool

	logger *logger.Logger
}

// NewClient builds a Client from cfg. An empty endpoint falls back to
// [DefaultEndpoint].
func NewClient(cfg config.Synthesizer, log *logger.Logger) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	client := utils.NewHTTPClient(cfg.Timeout)
	client.SetRetryCount(0)

	return &Client{
		client:        client,
		endpoint:      endpoint,
		apiKey:        cfg.APIKey,
		surfaceErrors: cfg.SurfaceErrors,
		logger:        log,
	}
}

// Synthesize returns the generated image as a data URL.
//
// Upstream failures are logged and answered with [PlaceholderImage] and a nil
// error, unless the client surfaces errors, in which case an error wrapping
// [ErrSynthesisFailed] is returned. Cancellation of ctx is always returned as
// an error so that nothing gets persisted for an abandoned request.
func (c *Client) Synthesize(ctx context.Context, prompt, reference string) (string, error) {
	image, err := c.Generate(ctx, prompt, reference)
	if err == nil {
		return image, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}

	c.logger.Error().Err(err).
		Str("endpoint", c.endpoint).
		Bool("with_reference", reference != "").
		Msg("image synthesis failed")

	if c.surfaceErrors {
		return "", err
	}

	return PlaceholderImage, nil
}

// Generate performs one generateContent call and extracts the first inline
// image. Every failure wraps [ErrSynthesisFailed].
func (c *Client) Generate(ctx context.Context, prompt, reference string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", c.apiKey).
		SetBody(newGenerateContentRequest(prompt, reference)).
		Post(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSynthesisFailed, err)
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: %w: %d", ErrSynthesisFailed, ErrUpstreamStatus, resp.StatusCode())
	}

	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", fmt.Errorf("%w: %w", ErrSynthesisFailed, ErrEmptyResponse)
	}

	var parsed generateContentResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decoding response: %w", ErrSynthesisFailed, err)
	}

	image, ok := parsed.image()
	if !ok {
		return "", fmt.Errorf("%w: %w", ErrSynthesisFailed, ErrNoImage)
	}

	return image, nil
}
