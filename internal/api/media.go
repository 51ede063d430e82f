package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// UploadMedia sends one media file to the backend as a multipart form and
// returns the filename the backend stored it under.
func (c *Client) UploadMedia(ctx context.Context, exhibitID, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("media", filename)
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copying media: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("closing form: %w", err)
	}

	path := expand(epMedia, map[string]string{"exhibit_id": exhibitID})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("x-access-token", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading media: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return "", &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	// The backend answers with the stored filename, which may differ from
	// the uploaded one when it de-duplicates.
	var stored []struct {
		Filename string `json:"media"`
	}
	if err := json.Unmarshal(env.Data.Data, &stored); err != nil || len(stored) == 0 || stored[0].Filename == "" {
		return filename, nil
	}
	return stored[0].Filename, nil
}

// DeleteMedia removes an uploaded media file from the backend.
func (c *Client) DeleteMedia(ctx context.Context, exhibitID, filename string) error {
	path := expand(epMediaFile, map[string]string{"exhibit_id": exhibitID, "filename": filename})
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}
