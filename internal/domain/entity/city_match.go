package entity

import (
	"strconv"
	"strings"
)

// CityMatch is one geocoding candidate
type CityMatch struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Name        string  `json:"name"`
	CountryCode string  `json:"countryCode"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
	Label       string  `json:"label,omitempty"`
	Value       string  `json:"value,omitempty"`
}

// OptionLabel renders "name, admin1, country" skipping empty parts, falling back to the country code
func (c CityMatch) OptionLabel() string {
	parts := []string{c.Name}
	if c.Admin1 != "" {
		parts = append(parts, c.Admin1)
	}
	if c.Country != "" {
		parts = append(parts, c.Country)
	} else if c.CountryCode != "" {
		parts = append(parts, c.CountryCode)
	}
	return strings.Join(parts, ", ")
}

// OptionValue renders the coordinates as "lat lon"
func (c CityMatch) OptionValue() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + " " + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// WithOption returns a copy carrying Label and Value
func (c CityMatch) WithOption() CityMatch {
	c.Label = c.OptionLabel()
	c.Value = c.OptionValue()
	return c
}
