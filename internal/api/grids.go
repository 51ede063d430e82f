package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// Grids lists the grid containers attached to an exhibit.
func (c *Client) Grids(ctx context.Context, exhibitID string) ([]records.Grid, error) {
	path := expand(epGrids, map[string]string{"exhibit_id": exhibitID})

	var grids []records.Grid
	if err := c.getList(ctx, path, &grids); err != nil {
		return nil, err
	}
	return grids, nil
}

// CreateGrid attaches a new grid container to an exhibit.
func (c *Client) CreateGrid(ctx context.Context, exhibitID string, grid *records.Grid) (string, error) {
	path := expand(epGrids, map[string]string{"exhibit_id": exhibitID})
	grid.ExhibitID = exhibitID

	data, err := c.do(ctx, http.MethodPost, path, grid)
	if err != nil {
		return "", err
	}
	return createdUUID(data)
}

// UpdateGrid replaces a grid container record.
func (c *Client) UpdateGrid(ctx context.Context, exhibitID, gridID string, grid *records.Grid) error {
	path := expand(epGrid, map[string]string{"exhibit_id": exhibitID, "grid_id": gridID})
	grid.ExhibitID = exhibitID
	_, err := c.do(ctx, http.MethodPut, path, grid)
	return err
}

// DeleteGrid removes a grid container and its items.
func (c *Client) DeleteGrid(ctx context.Context, exhibitID, gridID string) error {
	path := expand(epGrid, map[string]string{"exhibit_id": exhibitID, "grid_id": gridID})
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

// GridItems lists the items inside a grid.
func (c *Client) GridItems(ctx context.Context, exhibitID, gridID string) ([]records.GridItem, error) {
	path := expand(epGridItems, map[string]string{"exhibit_id": exhibitID, "grid_id": gridID})

	var items []records.GridItem
	if err := c.getList(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GridItem fetches a single grid item record.
func (c *Client) GridItem(ctx context.Context, exhibitID, gridID, itemID string) (*records.GridItem, error) {
	path := expand(epGridItem, map[string]string{"exhibit_id": exhibitID, "grid_id": gridID, "item_id": itemID})

	var items []records.GridItem
	if err := c.getList(ctx, path, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("grid item %s not found", itemID)
	}
	return &items[0], nil
}

// CreateGridItem adds an item to a grid and returns its uuid.
func (c *Client) CreateGridItem(ctx context.Context, exhibitID, gridID string, item *records.GridItem) (string, error) {
	path := expand(epGridItems, map[string]string{"exhibit_id": exhibitID, "grid_id": gridID})
	item.GridID = gridID

	data, err := c.do(ctx, http.MethodPost, path, item)
	if err != nil {
		return "", err
	}
	return createdUUID(data)
}

// UpdateGridItem replaces a grid item record.
func (c *Client) UpdateGridItem(ctx context.Context, exhibitID, gridID, itemID string, item *records.GridItem) error {
	path := expand(epGridItem, map[string]string{"exhibit_id": exhibitID, "grid_id": gridID, "item_id": itemID})
	item.GridID = gridID
	_, err := c.do(ctx, http.MethodPut, path, item)
	return err
}

// DeleteGridItem removes a grid item record.
func (c *Client) DeleteGridItem(ctx context.Context, exhibitID, gridID, itemID string) error {
	path := expand(epGridItem, map[string]string{"exhibit_id": exhibitID, "grid_id": gridID, "item_id": itemID})
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}
