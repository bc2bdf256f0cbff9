//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

// Package data implements the server's business rules on top of the
// database: accounts and tokens, project access, and assessment import.
package data

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/neuroinfo/dwiqc/common/hasher"
	"github.com/neuroinfo/dwiqc/common/interfaces"
	"github.com/neuroinfo/dwiqc/server/db"
	"github.com/neuroinfo/dwiqc/server/global"
)

type Data struct {
	logger    interfaces.Logger
	conf      *global.ServerConfig
	database  *db.DB
	hasher    *hasher.Hasher
	jwtKey    []byte
	filesPath string
}

// New opens the database named by the configuration and returns a Data instance
func New(conf *global.ServerConfig, logger interfaces.Logger) (*Data, error) {
	jwtKey := conf.SP.Get(global.ConfigJWTKey).Bytes()
	if len(jwtKey) == 0 {
		key, err := global.GenerateToken()
		if err != nil {
			return nil, fmt.Errorf("unable to generate JWT key: %w", err)
		}
		conf.SP.Set(global.ConfigJWTKey, key)
		jwtKey = []byte(key)
	}

	dbPath := conf.SC.Get(global.ConfigDBPath).String()
	if dbPath == "" {
		return nil, errors.New("database path missing from configuration")
	}

	filesPath := conf.SC.Get(global.ConfigFilesPath).String()
	if filesPath == "" {
		return nil, errors.New("files path missing from configuration")
	}

	dbInstance, err := db.Open(filepath.Join(dbPath, strings.ToLower(global.Name)+".db"), logger)
	if err != nil {
		return nil, fmt.Errorf("unable to open or create database: %w", err)
	}

	return &Data{
		logger:    logger,
		conf:      conf,
		database:  dbInstance,
		jwtKey:    jwtKey,
		filesPath: filesPath,
		hasher:    hasher.New(hasher.WithCache(global.ChecksumCacheTTL)),
	}, nil
}

// FilesPath is the directory served under global.FileDirPattern
func (d *Data) FilesPath() string {
	return d.filesPath
}

// Close anything data-related that requires it
func (d *Data) Close() {
	if d == nil {
		return
	}
	if d.database != nil {
		d.database.Close()
	}
}
