/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package db stores accounts, project grants, and assessment items in bbolt.
package db

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/neuroinfo/dwiqc/common/interfaces"
	"github.com/neuroinfo/dwiqc/common/null"
)

type DB struct {
	db     *bbolt.DB
	logger interfaces.Logger
}

const (
	BucketAuth   = "Auth"
	BucketItems  = "Items"
	BucketGrants = "Grants"
)

var bucketList = []string{BucketAuth, BucketItems, BucketGrants}

// Open opens (or creates) a Bolt DB at the specified path and makes
// sure every bucket exists
func Open(filePath string, logger interfaces.Logger) (*DB, error) {
	if logger == nil {
		logger = null.Logger()
	}

	logger.Infof(2201, "opening database: %s", filePath)

	// The timeout lets bbolt wait if another process holds the file lock
	db, err := bbolt.Open(filePath, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucketName := range bucketList {
			if _, createErr := tx.CreateBucketIfNotExists([]byte(bucketName)); createErr != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucketName, createErr)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &DB{db: db, logger: logger}, nil
}

// Close the database, ignore any errors
func (d *DB) Close() {
	_ = d.db.Close()
}
