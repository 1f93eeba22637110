package invoicing

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/invoicegen/backend/internal/domain/shared"
	"github.com/invoicegen/backend/internal/domain/shared/valueobject"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Client represents a customer that invoices are billed to.
// A client is owned by a single user and may be referenced by many invoices.
type Client struct {
	shared.OwnedAggregateRoot
	Name    string
	Email   string
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
	Phone   string
}

// NewClient creates a new client. All fields are required; the email must be
// syntactically valid.
func NewClient(userID uuid.UUID, name, email, street, city, state, zipCode, country, phone string) (*Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("Name cannot be empty")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if _, err := valueobject.NewAddress(street, city, state, zipCode, country); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}
	if strings.TrimSpace(phone) == "" {
		return nil, shared.NewValidationError("Phone cannot be empty")
	}

	return &Client{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		Name:               name,
		Email:              strings.ToLower(strings.TrimSpace(email)),
		Street:             street,
		City:               city,
		State:              state,
		ZipCode:            zipCode,
		Country:            country,
		Phone:              phone,
	}, nil
}

// Address projects the five postal fields into an Address value object
func (c *Client) Address() valueobject.Address {
	addr, _ := valueobject.NewAddress(c.Street, c.City, c.State, c.ZipCode, c.Country)
	return addr
}

// ClientUpdate carries a partial update; nil fields keep their prior values
type ClientUpdate struct {
	Name    *string
	Email   *string
	Street  *string
	City    *string
	State   *string
	ZipCode *string
	Country *string
	Phone   *string
}

// Empty reports whether the update supplies no fields at all
func (u ClientUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Street == nil && u.City == nil &&
		u.State == nil && u.ZipCode == nil && u.Country == nil && u.Phone == nil
}

// Update applies a partial update. Only supplied fields overwrite existing
// values; each supplied field is validated against the same rules as creation.
// The modification timestamp is refreshed on success.
func (c *Client) Update(upd ClientUpdate) error {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return shared.NewValidationError("Name cannot be empty")
	}
	if upd.Email != nil {
		if err := validateEmail(*upd.Email); err != nil {
			return err
		}
	}
	if upd.Phone != nil && strings.TrimSpace(*upd.Phone) == "" {
		return shared.NewValidationError("Phone cannot be empty")
	}

	street := merged(upd.Street, c.Street)
	city := merged(upd.City, c.City)
	state := merged(upd.State, c.State)
	zipCode := merged(upd.ZipCode, c.ZipCode)
	country := merged(upd.Country, c.Country)
	if _, err := valueobject.NewAddress(street, city, state, zipCode, country); err != nil {
		return shared.NewValidationError(err.Error())
	}

	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Email != nil {
		c.Email = strings.ToLower(strings.TrimSpace(*upd.Email))
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}
	c.Street = street
	c.City = city
	c.State = state
	c.ZipCode = zipCode
	c.Country = country

	c.Touch()
	c.IncrementVersion()
	return nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return shared.NewValidationError("Email is not well-formed")
	}
	return nil
}

func merged(supplied *string, prior string) string {
	if supplied != nil {
		return *supplied
	}
	return prior
}
