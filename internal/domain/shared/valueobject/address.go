package valueobject

import (
	"encoding/json"
	"errors"
	"strings"
)

// Address is a value object representing a postal address.
// It is immutable - all fields are set at construction and validated there.
type Address struct {
	street  string
	city    string
	state   string
	zipCode string
	country string
}

// NewAddress creates a new Address. All five fields are required.
func NewAddress(street, city, state, zipCode, country string) (Address, error) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	zipCode = strings.TrimSpace(zipCode)
	country = strings.TrimSpace(country)

	if street == "" {
		return Address{}, errors.New("street cannot be empty")
	}
	if city == "" {
		return Address{}, errors.New("city cannot be empty")
	}
	if state == "" {
		return Address{}, errors.New("state cannot be empty")
	}
	if zipCode == "" {
		return Address{}, errors.New("zip code cannot be empty")
	}
	if country == "" {
		return Address{}, errors.New("country cannot be empty")
	}

	return Address{
		street:  street,
		city:    city,
		state:   state,
		zipCode: zipCode,
		country: country,
	}, nil
}

// Street returns the street line
func (a Address) Street() string {
	return a.street
}

// City returns the city
func (a Address) City() string {
	return a.city
}

// State returns the state or province
func (a Address) State() string {
	return a.state
}

// ZipCode returns the postal code
func (a Address) ZipCode() string {
	return a.zipCode
}

// Country returns the country
func (a Address) Country() string {
	return a.country
}

// CityLine returns the "city, state zip" display line
func (a Address) CityLine() string {
	return a.city + ", " + a.state + " " + a.zipCode
}

// String returns the full single-line representation
func (a Address) String() string {
	return strings.Join([]string{a.street, a.CityLine(), a.country}, ", ")
}

// Equals compares two addresses field by field
func (a Address) Equals(other Address) bool {
	return a == other
}

// MarshalJSON implements json.Marshaler
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		State   string `json:"state"`
		ZipCode string `json:"zipCode"`
		Country string `json:"country"`
	}{
		Street:  a.street,
		City:    a.city,
		State:   a.state,
		ZipCode: a.zipCode,
		Country: a.country,
	})
}
