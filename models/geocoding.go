// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GeocodeResponse is the body returned by GET /location/search.
//
// The shape mirrors the classic Google geocoding response so that
// existing front-end code can consume it unchanged.
type GeocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}

// GeocodeResult is a single resolved location.
type GeocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
}

// Geometry wraps the resolved point.
type Geometry struct {
	Location LatLng `json:"location"`
}

// LatLng is a resolved coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NominatimPlace is one element of the Nominatim /search JSON array.
// Nominatim encodes coordinates as strings.
type NominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}
