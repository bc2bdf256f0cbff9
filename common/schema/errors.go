/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import "errors"

var (
	ErrNotFound       = errors.New("object not found")
	ErrNotDwiqc       = errors.New("item is not a DWIQC assessment")
	ErrNoResourceList = errors.New("assessment has no out_file resource list")
	ErrAccessDenied   = errors.New("access denied")
	ErrInvalidID      = errors.New("invalid item id")
)
