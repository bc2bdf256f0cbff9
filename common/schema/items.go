/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import (
	"encoding/json"
	"time"
)

// Item is a persisted record. Data holds the JSON encoding of the
// object named by XSIType.
type Item struct {
	XSIType  string          `json:"xsi_type"`
	ID       string          `json:"id"`
	Project  string          `json:"project"`
	Label    string          `json:"label"`
	Data     json.RawMessage `json:"data"`
	Created  time.Time       `json:"created"`
	Modified time.Time       `json:"modified"`
}

// AssessmentRef is the summary of an item used in lists
type AssessmentRef struct {
	ID       string    `json:"id"`
	Project  string    `json:"project"`
	Label    string    `json:"label"`
	XSIType  string    `json:"xsi_type"`
	Modified time.Time `json:"modified"`
}

// Ref returns the list summary of the item
func (i Item) Ref() AssessmentRef {
	return AssessmentRef{
		ID:       i.ID,
		Project:  i.Project,
		Label:    i.Label,
		XSIType:  i.XSIType,
		Modified: i.Modified,
	}
}

// UserMeta is the public view of an account
type UserMeta struct {
	User     string   `json:"user"`
	Role     int      `json:"role"`
	Projects []string `json:"projects,omitempty"`
}
