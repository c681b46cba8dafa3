// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-location-info/models"
)

// Field names for scoping validation. String and int64 inputs carry no
// type information of their own, so they always need an explicit field.
const (
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldName       = "name"
	FieldCoords     = "coords"
	FieldQuery      = "query"
	FieldLocation   = "location"
	FieldUserID     = "user_id"
	FieldFavoriteID = "favorite_id"
)

// LocationValidator implements [Validator] for the location-info domain:
// credentials, favorite requests, query-string coordinates, search terms
// and identifiers.
type LocationValidator struct{}

// NewLocationValidator returns a [LocationValidator] as a [Validator].
func NewLocationValidator() Validator {
	return &LocationValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported:
//   - models.Credentials / *models.Credentials (email, password)
//   - models.FavoriteRequest / *models.FavoriteRequest (name, coords)
//   - models.Coordinates / *models.Coordinates (coords)
//   - string with FieldQuery or FieldLocation
//   - int64 with FieldUserID or FieldFavoriteID
func (v *LocationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.FavoriteRequest:
		return v.validateFavoriteRequest(value, fields...)
	case *models.FavoriteRequest:
		return v.validateFavoriteRequest(*value, fields...)

	case models.Coordinates:
		return v.validateCoordinates(value)
	case *models.Coordinates:
		return v.validateCoordinates(*value)

	case string:
		return v.validateString(value, fields...)
	case int64:
		return v.validateID(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LocationValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if c.Email == "" {
				return ErrCredentialsRequired
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrCredentialsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LocationValidator) validateFavoriteRequest(r models.FavoriteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCoords}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(r.Name) == "" {
				return ErrFavoriteNameMissing
			}
		case FieldCoords:
			// any numeric value is accepted, including out-of-range ones
			if r.Lat == nil || r.Lon == nil {
				return ErrFavoriteCoordsMissing
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LocationValidator) validateCoordinates(c models.Coordinates) error {
	if c.Lat == "" || c.Lon == "" {
		return ErrCoordinatesRequired
	}
	if _, err := strconv.ParseFloat(c.Lat, 64); err != nil {
		return ErrInvalidCoordinates
	}
	if _, err := strconv.ParseFloat(c.Lon, 64); err != nil {
		return ErrInvalidCoordinates
	}

	return nil
}

func (v *LocationValidator) validateString(s string, fields ...string) error {
	if len(fields) == 0 {
		return ErrUnknownField
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if strings.TrimSpace(s) == "" {
				return ErrQueryRequired
			}
		case FieldLocation:
			if strings.TrimSpace(s) == "" {
				return ErrLocationRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LocationValidator) validateID(id int64, fields ...string) error {
	if len(fields) == 0 {
		return ErrUnknownField
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if id <= 0 {
				return ErrInvalidUserID
			}
		case FieldFavoriteID:
			if id <= 0 {
				return ErrInvalidFavoriteID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
