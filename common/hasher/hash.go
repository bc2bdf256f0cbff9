/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package hasher

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/neuroinfo/dwiqc/common/cache"
	"github.com/neuroinfo/dwiqc/common/interfaces"
)

type Hasher struct {
	bytes    []byte // raw bytes returned by the hash function
	cache    interfaces.Cache
	useCache bool
}

type Option func(*Hasher)

// New creates a Hasher using the supplied options.
func New(opts ...Option) *Hasher {
	// Initializing cache avoids nil pointer dereference
	r := &Hasher{cache: cache.New(0)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithCache sets the hash cache retention time in seconds
func WithCache(s int) Option {
	return func(h *Hasher) {
		h.cache = cache.New(s)
		h.useCache = true
	}
}

func (h *Hasher) Bytes() []byte {
	return h.bytes
}

func (h *Hasher) Base64() string {
	if len(h.bytes) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(h.bytes)
}

func (h *Hasher) Hex() string {
	if len(h.bytes) == 0 {
		return ""
	}
	return hex.EncodeToString(h.bytes)
}

func (h *Hasher) Compare(s string) bool {
	if s == "" || len(h.bytes) < 1 {
		return false
	}
	return h.Hex() == s || h.Base64() == s
}
