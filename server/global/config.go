/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/neuroinfo/dwiqc/common/interfaces"
	"github.com/neuroinfo/dwiqc/common/uconfig"
)

type ServerConfig struct {
	C  interfaces.Config     // Config object
	SC interfaces.Parameters // Server configuration
	SP interfaces.Parameters // Server private configuration
}

// Config creates the configuration object, sets defaults, and loads the
// configuration file. DWIQC_CONFIG names the file explicitly; otherwise
// the standard locations are searched.
func Config() (*ServerConfig, error) {
	var err error
	c := &ServerConfig{}

	if file := os.Getenv(ConfigEnv); file != "" {
		c.C, err = uconfig.New(uconfig.WithLoadOrCreate(file))
	} else {
		c.C, err = uconfig.New(uconfig.WithFindOrCreate(UnixConfigFiles))
	}
	if err != nil {
		return &ServerConfig{}, err
	}

	c.SC, c.SP = setDefaults(c.C)

	if c.SP.Get(ConfigJWTKey).String() == "" {
		key, err := GenerateToken()
		if err != nil {
			return &ServerConfig{}, err
		}
		c.SP.Set(ConfigJWTKey, key)
	}

	dPath := c.SC.Get(ConfigDataPath).String()
	if dPath == "" {
		for _, path := range UnixDefaultDataPaths {
			if uconfig.CreateDir(path) {
				dPath = path
				break
			}
		}
		if dPath == "" {
			return &ServerConfig{}, fmt.Errorf("unable to determine or create data directory")
		}
		c.SC.Set(ConfigDataPath, dPath)
	}

	dbPath, err := subDir(c.SC, ConfigDBPath, dPath, "db")
	if err != nil {
		return &ServerConfig{}, err
	}

	fPath, err := subDir(c.SC, ConfigFilesPath, dPath, "files")
	if err != nil {
		return &ServerConfig{}, err
	}

	if c.SC.Get(ConfigLogFile).String() == "" {
		logFile := DefaultLog()
		if lPath := uconfig.CreateSubDir(dPath, "logs"); lPath != "" {
			logFile = filepath.Join(lPath, LogName+".log")
		}
		c.SC.Set(ConfigLogFile, logFile)
	}

	// The paths may be in the config file but the directories deleted
	for _, dir := range []string{dPath, dbPath, fPath} {
		if !uconfig.CreateDir(dir) {
			return &ServerConfig{}, fmt.Errorf("unable to open or create %s", dir)
		}
	}

	if err = c.C.Checkpoint(); err != nil {
		return &ServerConfig{}, fmt.Errorf("unable to checkpoint config: %w", err)
	}
	return c, nil
}

// ConfigFrom wraps an existing configuration with the server defaults
// applied. It does not touch the file system.
func ConfigFrom(c interfaces.Config) *ServerConfig {
	sc, sp := setDefaults(c)
	return &ServerConfig{C: c, SC: sc, SP: sp}
}

// subDir returns the configured path for key, creating and saving
// dataPath/name when none is configured
func subDir(sc interfaces.Parameters, key, dataPath, name string) (string, error) {
	path := sc.Get(key).String()
	if path != "" {
		return path, nil
	}

	path = uconfig.CreateSubDir(dataPath, name)
	if path == "" {
		return "", fmt.Errorf("unable to create %s directory in %s", name, dataPath)
	}
	sc.Set(key, path)
	return path, nil
}

// GenerateToken creates a new random token
func GenerateToken() (string, error) {
	token := make([]byte, TokenLength)
	if _, err := io.ReadFull(rand.Reader, token); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(token), nil
}

func (c *ServerConfig) Checkpoint() error {
	return c.C.Checkpoint()
}
