package client

import (
	"context"
	"fmt"

	"github.com/kasmi00/yatrimap-frontend/pkg/category"
	"github.com/kasmi00/yatrimap-frontend/pkg/models"
)

// Destinations lists every destination
func (c *Client) Destinations(ctx context.Context) ([]models.Destination, error) {
	var out []models.Destination
	err := c.getJSON(ctx, "/api/destination", &out)
	return out, err
}

// Destination fetches one destination by id
func (c *Client) Destination(ctx context.Context, id uint) (*models.Destination, error) {
	var out models.Destination
	err := c.getJSON(ctx, fmt.Sprintf("/api/destination/%d", id), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DestinationsBySection lists the destinations curated into a homepage section
func (c *Client) DestinationsBySection(ctx context.Context, section string) ([]models.Destination, error) {
	var out []models.Destination
	err := c.getJSON(ctx, "/api/destination/section/"+section, &out)
	return out, err
}

// DestinationsByCategory runs a fresh remote query scoped to one category.
// Empty categories answer 404, surfaced as category.ErrNoDestinations.
func (c *Client) DestinationsByCategory(ctx context.Context, name string) ([]models.Destination, error) {
	var out []models.Destination
	err := c.getJSON(ctx, "/api/destination/category/"+name, &out)
	if apiErr, ok := err.(*APIError); ok && apiErr.IsNotFound() {
		return nil, category.ErrNoDestinations
	}
	return out, err
}

// CategoryCounts fetches all destinations and derives the per-category counts
// for the category browser.
func (c *Client) CategoryCounts(ctx context.Context) (category.Counts, error) {
	destinations, err := c.Destinations(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(destinations))
	for _, d := range destinations {
		names = append(names, d.Category)
	}
	return category.CountByCategory(names), nil
}

// CreateDestination creates a destination via the admin multipart form
func (c *Client) CreateDestination(ctx context.Context, fields map[string]string, images []FileUpload) (*models.Destination, error) {
	var out models.Destination
	err := c.postMultipart(ctx, "/api/destination", fields, images, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDestination edits a destination
func (c *Client) UpdateDestination(ctx context.Context, id uint, dest *models.Destination) (*models.Destination, error) {
	var out models.Destination
	err := c.putJSON(ctx, fmt.Sprintf("/api/destination/%d", id), dest, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDestination removes a destination
func (c *Client) DeleteDestination(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/destination/%d", id))
}

// TourPackages lists every tour package
func (c *Client) TourPackages(ctx context.Context) ([]models.TourPackage, error) {
	var out []models.TourPackage
	err := c.getJSON(ctx, "/api/packages/find", &out)
	return out, err
}

// TourPackage fetches one package by id
func (c *Client) TourPackage(ctx context.Context, id uint) (*models.TourPackage, error) {
	var out models.TourPackage
	err := c.getJSON(ctx, fmt.Sprintf("/api/packages/%d", id), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTourPackage creates a tour package
func (c *Client) CreateTourPackage(ctx context.Context, pkg *models.TourPackage) (*models.TourPackage, error) {
	var out models.TourPackage
	err := c.postJSON(ctx, "/api/packages/create", pkg, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTourPackage edits a tour package
func (c *Client) UpdateTourPackage(ctx context.Context, id uint, pkg *models.TourPackage) (*models.TourPackage, error) {
	var out models.TourPackage
	err := c.putJSON(ctx, fmt.Sprintf("/api/packages/%d", id), pkg, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTourPackage removes a tour package
func (c *Client) DeleteTourPackage(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/packages/%d", id))
}

// AccommodationsByDestination lists the lodging options of a destination
func (c *Client) AccommodationsByDestination(ctx context.Context, destinationID uint) ([]models.Accommodation, error) {
	var out []models.Accommodation
	err := c.getJSON(ctx, fmt.Sprintf("/api/accommodation/destination/%d", destinationID), &out)
	return out, err
}

// Accommodation fetches one accommodation by id
func (c *Client) Accommodation(ctx context.Context, id uint) (*models.Accommodation, error) {
	var out models.Accommodation
	err := c.getJSON(ctx, fmt.Sprintf("/api/accommodation/select/%d", id), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAccommodation creates an accommodation via the admin multipart form
func (c *Client) CreateAccommodation(ctx context.Context, fields map[string]string, image *FileUpload) (*models.Accommodation, error) {
	var files []FileUpload
	if image != nil {
		files = append(files, *image)
	}
	var out models.Accommodation
	err := c.postMultipart(ctx, "/api/accommodation", fields, files, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Guides lists every guide
func (c *Client) Guides(ctx context.Context) ([]models.Guide, error) {
	var out []models.Guide
	err := c.getJSON(ctx, "/api/guides", &out)
	return out, err
}

// CreateGuide registers a guide
func (c *Client) CreateGuide(ctx context.Context, guide *models.Guide) (*models.Guide, error) {
	var out models.Guide
	err := c.postJSON(ctx, "/api/guides", guide, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateGuide edits a guide
func (c *Client) UpdateGuide(ctx context.Context, id uint, guide *models.Guide) (*models.Guide, error) {
	var out models.Guide
	err := c.putJSON(ctx, fmt.Sprintf("/api/guides/%d", id), guide, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Users lists every account (admin)
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.getJSON(ctx, "/api/user", &out)
	return out, err
}

// DeleteUser removes an account (admin)
func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/user/%d", id))
}
