package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/alexisbeaulieu97/huetui/internal/logger"
	"github.com/alexisbeaulieu97/huetui/internal/palette"
	apperrors "github.com/alexisbeaulieu97/huetui/pkg/errors"
)

const (
	uploadPath         = "/upload"
	generatePath       = "/generate_palette"
	adjustLightingPath = "/adjust_lighting"
	exportPath         = "/export_palette"
)

// GenerateOptions carries the categorical parameters the service interprets.
// The values are opaque to the client.
type GenerateOptions struct {
	Style    string
	Mood     string
	Lighting string
	Harmony  string
}

// Client talks to the palette service over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *logger.Logger
}

// New creates a Client for the service at baseURL. A nil httpc falls back to
// http.DefaultClient.
func New(baseURL string, httpc *http.Client, log *logger.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		log:     log,
	}
}

// AnalyzeImage uploads an image for color extraction and returns the palette
// the service generated from it.
func (c *Client) AnalyzeImage(ctx context.Context, file io.Reader, filename string, opts GenerateOptions) (*palette.Palette, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, apperrors.NewServiceError("upload", 0, "failed to build upload request", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, apperrors.NewServiceError("upload", 0, "failed to read image", err)
	}

	fields := map[string]string{
		"style":    opts.Style,
		"mood":     opts.Mood,
		"lighting": opts.Lighting,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, apperrors.NewServiceError("upload", 0, "failed to build upload request", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.NewServiceError("upload", 0, "failed to build upload request", err)
	}

	data, err := c.post(ctx, "upload", uploadPath, writer.FormDataContentType(), &body)
	if err != nil {
		return nil, err
	}
	return decodePalette("upload", data)
}

// GeneratePalette asks the service for a palette derived from seed colors and
// the current settings.
func (c *Client) GeneratePalette(ctx context.Context, seeds []palette.RGB, opts GenerateOptions) (*palette.Palette, error) {
	payload := struct {
		Colors   []palette.RGB `json:"colors"`
		Style    string        `json:"style"`
		Mood     string        `json:"mood"`
		Lighting string        `json:"lighting"`
		Harmony  string        `json:"harmony"`
	}{
		Colors:   seeds,
		Style:    opts.Style,
		Mood:     opts.Mood,
		Lighting: opts.Lighting,
		Harmony:  opts.Harmony,
	}

	data, err := c.postJSON(ctx, "generate_palette", generatePath, payload)
	if err != nil {
		return nil, err
	}
	return decodePalette("generate_palette", data)
}

// AdjustLighting re-tints the supplied colors for a lighting condition. The
// palette name is untouched; only the color list comes back.
func (c *Client) AdjustLighting(ctx context.Context, colors []palette.Color, lighting string) ([]palette.Color, error) {
	payload := struct {
		Colors   []palette.Color `json:"colors"`
		Lighting string          `json:"lighting"`
	}{Colors: colors, Lighting: lighting}

	data, err := c.postJSON(ctx, "adjust_lighting", adjustLightingPath, payload)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Colors []palette.Color `json:"colors"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, apperrors.NewServiceError("adjust_lighting", 0, "invalid response from server", err)
	}
	if len(resp.Colors) == 0 {
		return nil, apperrors.NewServiceError("adjust_lighting", 0, "response contained no colors", nil)
	}
	return resp.Colors, nil
}

// ExportPalette renders the palette server-side. For the png format the
// returned bytes are the image blob; for json they are the export document.
func (c *Client) ExportPalette(ctx context.Context, colors []palette.Color, name, format string) ([]byte, error) {
	payload := struct {
		Colors []palette.Color `json:"colors"`
		Name   string          `json:"name"`
		Format string          `json:"format"`
	}{Colors: colors, Name: name, Format: format}

	return c.postJSON(ctx, "export_palette", exportPath, payload)
}

func (c *Client) postJSON(ctx context.Context, op, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.NewServiceError(op, 0, "failed to encode request", err)
	}
	return c.post(ctx, op, path, "application/json", bytes.NewReader(body))
}

func (c *Client) post(ctx context.Context, op, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, apperrors.NewServiceError(op, 0, "failed to build request", err)
	}
	req.Header.Set("Content-Type", contentType)

	c.log.WithFields(map[string]any{"operation": op}).Debug("posting to palette service")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, apperrors.NewServiceError(op, 0, "network error", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewServiceError(op, resp.StatusCode, "failed to read response", err)
	}

	if err := checkStatus(op, resp.StatusCode, data); err != nil {
		return nil, err
	}
	return data, nil
}

// checkStatus validates a service response. Failed responses carry the
// server-provided error message when the body is JSON with an error field,
// a generic HTTP-status message when the field is absent, and a generic
// network-error message when the body is not JSON at all.
func checkStatus(op string, status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apperrors.NewServiceError(op, status, "network error", nil)
	}
	if payload.Error == "" {
		return apperrors.NewServiceError(op, status, fmt.Sprintf("request failed with status %d", status), nil)
	}
	return apperrors.NewServiceError(op, status, payload.Error, nil)
}

func decodePalette(op string, data []byte) (*palette.Palette, error) {
	var resp struct {
		Palette *palette.Palette `json:"palette"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, apperrors.NewServiceError(op, 0, "invalid response from server", err)
	}
	if resp.Palette == nil || len(resp.Palette.Colors) == 0 {
		return nil, apperrors.NewServiceError(op, 0, "response contained no palette", nil)
	}
	return resp.Palette, nil
}
