// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultHistoryLimit is the number of entries returned by GET /history.
const DefaultHistoryLimit = 10

// SearchHistoryEntry is one recorded location search.
type SearchHistoryEntry struct {
	ID        int64     `json:"-"`
	UserID    int64     `json:"-"`
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the SearchHistoryEntry model.
func (s SearchHistoryEntry) TableName() string {
	return "search_history"
}
