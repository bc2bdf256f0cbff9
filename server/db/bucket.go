//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package db

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/neuroinfo/dwiqc/common/schema"
)

// SetData serializes and stores data in a specified bucket using a given key
func (d *DB) SetData(bucketName string, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize data: %w", err)
	}

	return d.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return fmt.Errorf("%s bucket not available: %w", bucketName, err)
		}

		if err = bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to store data in bucket: %w", err)
		}
		return nil
	})
}

// GetData retrieves and deserializes data from a specified bucket using a
// given key. A missing key returns schema.ErrNotFound. A nil result only
// checks for presence.
func (d *DB) GetData(bucketName string, key string, result any) error {
	return d.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", bucketName)
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return schema.ErrNotFound
		}

		if result != nil {
			if err := json.Unmarshal(data, result); err != nil {
				return fmt.Errorf("failed to deserialize data: %w", err)
			}
		}
		return nil
	})
}

// DeleteData deletes data from a specified bucket using a given key
func (d *DB) DeleteData(bucketName string, key string) error {
	return d.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", bucketName)
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("error deleting data: %w", err)
		}
		return nil
	})
}

// KeyExists checks if a key exists in a specified bucket
func (d *DB) KeyExists(bucketName string, key string) (bool, error) {
	var exists bool
	err := d.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", bucketName)
		}
		exists = bucket.Get([]byte(key)) != nil
		return nil
	})
	return exists, err
}

// ForEach iterates over all keys in the specified bucket in key order
func (d *DB) ForEach(bucketName string, fn func(key, value []byte) error) error {
	return d.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return fmt.Errorf("bucket %s not found", bucketName)
		}
		return b.ForEach(fn)
	})
}
