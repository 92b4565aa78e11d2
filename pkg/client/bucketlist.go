package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/kasmi00/yatrimap-frontend/pkg/models"
)

// BucketList is the wishlist store. The remote collection is the source of
// truth; the local set is a cache rebuilt from the server after every
// confirmed mutation, so a failed request never leaves the cache claiming
// state the server does not have.
type BucketList struct {
	client *Client

	mu    sync.RWMutex
	items map[uint]models.BucketListItem // keyed by destination id
}

// NewBucketList creates an empty store. Call Refresh to load the remote
// collection before reading from it.
func NewBucketList(client *Client) *BucketList {
	return &BucketList{
		client: client,
		items:  make(map[uint]models.BucketListItem),
	}
}

// Refresh replaces the cache with the server's collection
func (b *BucketList) Refresh(ctx context.Context) error {
	var remote []models.BucketListItem
	if err := b.client.getJSON(ctx, "/api/bucket-list", &remote); err != nil {
		return err
	}

	items := make(map[uint]models.BucketListItem, len(remote))
	for _, item := range remote {
		items[item.DestinationID] = item
	}

	b.mu.Lock()
	b.items = items
	b.mu.Unlock()
	return nil
}

// Contains reports whether a destination is on the list
func (b *BucketList) Contains(destinationID uint) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.items[destinationID]
	return ok
}

// Items returns the cached collection
func (b *BucketList) Items() []models.BucketListItem {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.BucketListItem, 0, len(b.items))
	for _, item := range b.items {
		out = append(out, item)
	}
	return out
}

// Len returns the cached item count
func (b *BucketList) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// Toggle adds the destination remotely when absent and removes it when
// present, then refreshes the cache from the server. Two toggles in a row
// return the list to its starting state.
func (b *BucketList) Toggle(ctx context.Context, destination *models.Destination) (added bool, err error) {
	if b.Contains(destination.ID) {
		if err := b.remove(ctx, destination.ID); err != nil {
			return false, err
		}
		return false, b.Refresh(ctx)
	}

	if err := b.add(ctx, destination); err != nil {
		return false, err
	}
	return true, b.Refresh(ctx)
}

// Remove deletes a destination from the list and refreshes the cache
func (b *BucketList) Remove(ctx context.Context, destinationID uint) error {
	if err := b.remove(ctx, destinationID); err != nil {
		return err
	}
	return b.Refresh(ctx)
}

func (b *BucketList) add(ctx context.Context, destination *models.Destination) error {
	return b.client.postJSON(ctx, "/api/bucket-list", map[string]interface{}{
		"destinationId": destination.ID,
	}, nil)
}

func (b *BucketList) remove(ctx context.Context, destinationID uint) error {
	return b.client.delete(ctx, fmt.Sprintf("/api/bucket-list/%d", destinationID))
}
