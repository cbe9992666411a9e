package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Remover strips the background from an image and returns PNG bytes with an
// alpha channel.
type Remover interface {
	Remove(ctx context.Context, image []byte) ([]byte, error)
}

// ErrNoRemover is returned when background removal is requested but no
// removal backend is configured.
var ErrNoRemover = errors.New("background removal not configured")

// RembgClient talks to a remote rembg HTTP service. The service accepts a
// multipart upload under the "file" field and answers with the cut-out PNG.
type RembgClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRembgClient(baseURL string) *RembgClient {
	return &RembgClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *RembgClient) Remove(ctx context.Context, image []byte) ([]byte, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "image.png")
	if err != nil {
		return nil, fmt.Errorf("rembg request: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("rembg request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("rembg request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/remove", &body)
	if err != nil {
		return nil, fmt.Errorf("rembg request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rembg call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("rembg http status %d: %s", resp.StatusCode, string(snippet))
	}
	return io.ReadAll(resp.Body)
}

// noopRemover fails every call; used when REMBG_URL is unset.
type noopRemover struct{}

func (noopRemover) Remove(ctx context.Context, image []byte) ([]byte, error) {
	_ = ctx
	_ = image
	return nil, ErrNoRemover
}

// NewRemover picks the rembg client when a URL is configured.
func NewRemover(rembgURL string) Remover {
	if rembgURL == "" {
		return noopRemover{}
	}
	return NewRembgClient(rembgURL)
}
