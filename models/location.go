// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Favorite is a user-saved named coordinate pair.
//
// Latitude and longitude are stored exactly as received; range checks
// are deliberately not applied.
type Favorite struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"-"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	IsFavorite bool    `json:"-"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "locations"
}

// FavoriteRequest is the body of POST /favorites.
// Pointers distinguish a missing coordinate from a zero one.
type FavoriteRequest struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

// Coordinates is a latitude/longitude pair as received in a query string.
// The raw strings are forwarded to upstream providers untouched.
type Coordinates struct {
	Lat string
	Lon string
}
