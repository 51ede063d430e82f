package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// Headings lists the headings attached to an exhibit.
func (c *Client) Headings(ctx context.Context, exhibitID string) ([]records.Heading, error) {
	path := expand(epHeadings, map[string]string{"exhibit_id": exhibitID})

	var headings []records.Heading
	if err := c.getList(ctx, path, &headings); err != nil {
		return nil, err
	}
	return headings, nil
}

// Heading fetches a single heading record.
func (c *Client) Heading(ctx context.Context, exhibitID, headingID string) (*records.Heading, error) {
	path := expand(epHeading, map[string]string{"exhibit_id": exhibitID, "heading_id": headingID})

	var headings []records.Heading
	if err := c.getList(ctx, path, &headings); err != nil {
		return nil, err
	}
	if len(headings) == 0 {
		return nil, fmt.Errorf("heading %s not found", headingID)
	}
	return &headings[0], nil
}

// CreateHeading attaches a new heading to an exhibit and returns its uuid.
func (c *Client) CreateHeading(ctx context.Context, exhibitID string, heading *records.Heading) (string, error) {
	path := expand(epHeadings, map[string]string{"exhibit_id": exhibitID})
	heading.ExhibitID = exhibitID

	data, err := c.do(ctx, http.MethodPost, path, heading)
	if err != nil {
		return "", err
	}
	return createdUUID(data)
}

// UpdateHeading replaces a heading record.
func (c *Client) UpdateHeading(ctx context.Context, exhibitID, headingID string, heading *records.Heading) error {
	path := expand(epHeading, map[string]string{"exhibit_id": exhibitID, "heading_id": headingID})
	heading.ExhibitID = exhibitID
	_, err := c.do(ctx, http.MethodPut, path, heading)
	return err
}

// DeleteHeading removes a heading record.
func (c *Client) DeleteHeading(ctx context.Context, exhibitID, headingID string) error {
	path := expand(epHeading, map[string]string{"exhibit_id": exhibitID, "heading_id": headingID})
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}
