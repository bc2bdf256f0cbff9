/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/neuroinfo/dwiqc/common/schema"
)

// PutItem stores an item, replacing any item with the same ID. The
// original creation time is kept on replacement.
func (d *DB) PutItem(item schema.Item) error {
	if !ValidKey(item.ID) {
		return fmt.Errorf("%w %q", schema.ErrInvalidID, item.ID)
	}
	key := item.ID

	var existing schema.Item
	err := d.GetData(BucketItems, key, &existing)
	switch {
	case err == nil:
		item.Created = existing.Created
	case errors.Is(err, schema.ErrNotFound):
		item.Created = time.Now().UTC()
	default:
		return err
	}
	item.Modified = time.Now().UTC()

	if err = d.SetData(BucketItems, key, item); err != nil {
		return fmt.Errorf("failed to store item %s: %w", item.ID, err)
	}
	return nil
}

// GetItem returns the item with the given ID or schema.ErrNotFound
func (d *DB) GetItem(id string) (schema.Item, error) {
	var item schema.Item
	err := d.GetData(BucketItems, validateKey(id), &item)
	return item, err
}

// DeleteItem removes an item. A missing item returns schema.ErrNotFound.
func (d *DB) DeleteItem(id string) error {
	key := validateKey(id)
	exists, err := d.KeyExists(BucketItems, key)
	if err != nil {
		return err
	}
	if !exists {
		return schema.ErrNotFound
	}
	return d.DeleteData(BucketItems, key)
}

// ListItems returns every stored item ordered by ID
func (d *DB) ListItems() ([]schema.Item, error) {
	var items []schema.Item
	err := d.ForEach(BucketItems, func(key, value []byte) error {
		var item schema.Item
		if err := json.Unmarshal(value, &item); err != nil {
			return fmt.Errorf("failed to deserialize item %s: %w", key, err)
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}
