// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrCredentialsRequired   = errors.New("email and password are required")
	ErrQueryRequired         = errors.New("search query is required")
	ErrLocationRequired      = errors.New("location is required")
	ErrCoordinatesRequired   = errors.New("lat and lon are required")
	ErrInvalidCoordinates    = errors.New("lat and lon must be numbers")
	ErrFavoriteNameMissing   = errors.New("favorite name is required")
	ErrFavoriteCoordsMissing = errors.New("favorite lat and lon are required")
	ErrInvalidUserID         = errors.New("invalid user ID")
	ErrInvalidFavoriteID     = errors.New("invalid favorite ID")
)

// publicMessages holds the client-facing text for input errors.
var publicMessages = []struct {
	err     error
	message string
}{
	{ErrCredentialsRequired, "Email and password are required"},
	{ErrQueryRequired, "Query parameter 'q' is required"},
	{ErrLocationRequired, "Query parameter 'location' is required"},
	{ErrCoordinatesRequired, "Query parameters 'lat' and 'lon' are required"},
	{ErrInvalidCoordinates, "Query parameters 'lat' and 'lon' must be numbers"},
	{ErrFavoriteNameMissing, "Field 'name' is required"},
	{ErrFavoriteCoordsMissing, "Fields 'lat' and 'lon' are required"},
	{ErrInvalidFavoriteID, "Invalid favorite id"},
}

// PublicMessage returns the client-facing text of the first input error
// found in err's chain.
func PublicMessage(err error) (string, bool) {
	for _, m := range publicMessages {
		if errors.Is(err, m.err) {
			return m.message, true
		}
	}
	return "", false
}
