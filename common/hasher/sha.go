/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package hasher

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// SHA256File hashes the named file. A failure to open or read the file
// yields an empty Hasher. Cached entries are keyed by path, size, and
// modification time so a rewritten file is hashed again.
func (h *Hasher) SHA256File(f string) *Hasher {
	if f == "" {
		return &Hasher{}
	}

	info, err := os.Stat(f)
	if err != nil || info.IsDir() {
		return &Hasher{}
	}
	key := fmt.Sprintf("%s|%d|%d", f, info.Size(), info.ModTime().UnixNano())

	if h.useCache {
		if b := h.cache.Get(key); b != nil {
			return &Hasher{bytes: b}
		}
	}

	file, err := os.Open(f)
	if err != nil {
		return &Hasher{}
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	sum := sha256.New()
	if _, err = io.Copy(sum, file); err != nil {
		return &Hasher{}
	}
	b := sum.Sum(nil)

	if h.useCache {
		h.cache.Set(key, b)
	}
	return &Hasher{bytes: b}
}
