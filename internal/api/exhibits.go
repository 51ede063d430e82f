package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// Exhibits lists all exhibit records.
func (c *Client) Exhibits(ctx context.Context) ([]records.Exhibit, error) {
	var exhibits []records.Exhibit
	if err := c.getList(ctx, epExhibits, &exhibits); err != nil {
		return nil, err
	}
	return exhibits, nil
}

// Exhibit fetches a single exhibit record.
func (c *Client) Exhibit(ctx context.Context, exhibitID string) (*records.Exhibit, error) {
	path := expand(epExhibit, map[string]string{"exhibit_id": exhibitID})

	var exhibits []records.Exhibit
	if err := c.getList(ctx, path, &exhibits); err != nil {
		return nil, err
	}
	if len(exhibits) == 0 {
		return nil, fmt.Errorf("exhibit %s not found", exhibitID)
	}
	return &exhibits[0], nil
}

// CreateExhibit creates an exhibit record and returns its uuid.
func (c *Client) CreateExhibit(ctx context.Context, exhibit *records.Exhibit) (string, error) {
	data, err := c.do(ctx, http.MethodPost, epExhibits, exhibit)
	if err != nil {
		return "", err
	}
	return createdUUID(data)
}

// UpdateExhibit replaces an exhibit record.
func (c *Client) UpdateExhibit(ctx context.Context, exhibitID string, exhibit *records.Exhibit) error {
	path := expand(epExhibit, map[string]string{"exhibit_id": exhibitID})
	_, err := c.do(ctx, http.MethodPut, path, exhibit)
	return err
}

// DeleteExhibit removes an exhibit record.
func (c *Client) DeleteExhibit(ctx context.Context, exhibitID string) error {
	path := expand(epExhibit, map[string]string{"exhibit_id": exhibitID})
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

// SetExhibitPublished toggles an exhibit's publish flag without touching
// the rest of the record.
func (c *Client) SetExhibitPublished(ctx context.Context, exhibitID string, published bool) error {
	path := expand(epExhibit, map[string]string{"exhibit_id": exhibitID})
	patch := map[string]bool{"is_published": published}
	_, err := c.do(ctx, http.MethodPut, path, patch)
	return err
}
