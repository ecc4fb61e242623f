package domain

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	"github.com/clientbook/clientbook/internal/database/schema"
)

//go:generate mockgen -destination mocks/mock_client_service.go -package mocks github.com/clientbook/clientbook/internal/domain ClientService
//go:generate mockgen -destination mocks/mock_client_repository.go -package mocks github.com/clientbook/clientbook/internal/domain ClientRepository

// Client is a person record with a unique email and any number of phones
type Client struct {
	ID        int64    `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phones    []string `json:"phones,omitempty"`
}

// Validate checks the fields required to store a new client, including its initial phones
func (c *Client) Validate() error {
	if err := validateRequired("first_name", c.FirstName, schema.NameMaxLength); err != nil {
		return err
	}
	if err := validateRequired("last_name", c.LastName, schema.NameMaxLength); err != nil {
		return err
	}
	if err := validateEmail(c.Email); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(c.Phones))
	for _, phone := range c.Phones {
		if err := ValidatePhoneNumber(phone); err != nil {
			return err
		}
		if _, ok := seen[phone]; ok {
			return NewValidationError(fmt.Sprintf("invalid client: phone_number %s is listed twice", phone))
		}
		seen[phone] = struct{}{}
	}

	return nil
}

// Phone is a phone number owned by exactly one client
type Phone struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"client_id"`
	PhoneNumber string `json:"phone_number"`
}

// ClientUpdate holds the fields to change on a client. Empty fields are left untouched.
type ClientUpdate struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// IsEmpty reports whether the update changes nothing
func (u ClientUpdate) IsEmpty() bool {
	return u.FirstName == "" && u.LastName == "" && u.Email == ""
}

// Fields returns the column/value pairs of the non-empty fields
func (u ClientUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.FirstName != "" {
		fields["first_name"] = u.FirstName
	}
	if u.LastName != "" {
		fields["last_name"] = u.LastName
	}
	if u.Email != "" {
		fields["email"] = u.Email
	}
	return fields
}

func (u ClientUpdate) Validate() error {
	if u.FirstName != "" {
		if err := validateRequired("first_name", u.FirstName, schema.NameMaxLength); err != nil {
			return err
		}
	}
	if u.LastName != "" {
		if err := validateRequired("last_name", u.LastName, schema.NameMaxLength); err != nil {
			return err
		}
	}
	if u.Email != "" {
		if err := validateEmail(u.Email); err != nil {
			return err
		}
	}
	return nil
}

// ClientFilter selects clients. A non-empty Phone takes precedence over every other field;
// otherwise the set fields are combined with AND.
type ClientFilter struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// IsEmpty reports whether no field is set
func (f ClientFilter) IsEmpty() bool {
	return f.ID == 0 && f.FirstName == "" && f.LastName == "" && f.Email == "" && f.Phone == ""
}

func (f ClientFilter) Validate() error {
	if f.IsEmpty() {
		return NewValidationError("invalid client filter: at least one filter field is required")
	}
	if f.Phone != "" {
		return nil
	}
	if f.ID < 0 {
		return NewValidationError("invalid client filter: id must be positive")
	}
	return nil
}

// ValidateClientID rejects ids that can never have been assigned
func ValidateClientID(id int64) error {
	if id <= 0 {
		return NewValidationError(fmt.Sprintf("invalid client id: %d", id))
	}
	return nil
}

// ValidatePhoneNumber checks a phone number fits the phone_number column
func ValidatePhoneNumber(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return NewValidationError("invalid phone: phone_number is required")
	}
	if utf8.RuneCountInString(phone) > schema.PhoneMaxLength {
		return NewValidationError(fmt.Sprintf("invalid phone: phone_number length must be between 1 and %d", schema.PhoneMaxLength))
	}
	return nil
}

func validateRequired(field, value string, maxLength int) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("invalid client: %s is required", field))
	}
	if utf8.RuneCountInString(value) > maxLength {
		return NewValidationError(fmt.Sprintf("invalid client: %s length must be between 1 and %d", field, maxLength))
	}
	return nil
}

func validateEmail(email string) error {
	if err := validateRequired("email", email, schema.EmailMaxLength); err != nil {
		return err
	}
	if !govalidator.IsEmail(email) {
		return NewValidationError(fmt.Sprintf("invalid client: email %s is not a valid address", email))
	}
	return nil
}

// ScanClient scans a client from the database. Phones are loaded separately.
func ScanClient(scanner interface {
	Scan(dest ...interface{}) error
}) (*Client, error) {
	var c Client
	if err := scanner.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// ScanPhone scans a phone row
func ScanPhone(scanner interface {
	Scan(dest ...interface{}) error
}) (*Phone, error) {
	var p Phone
	if err := scanner.Scan(
		&p.ID,
		&p.ClientID,
		&p.PhoneNumber,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// ClientRepository is the persistence contract for clients and their phones.
// Every method runs in its own transaction.
type ClientRepository interface {
	// InitializeSchema creates the tables if they do not exist
	InitializeSchema(ctx context.Context) error

	// CreateClient stores the client and its phones and returns the new id
	CreateClient(ctx context.Context, client *Client) (int64, error)

	// AddPhone links a phone number to an existing client
	AddPhone(ctx context.Context, clientID int64, phoneNumber string) error

	// UpdateClient sets the non-empty fields of update
	UpdateClient(ctx context.Context, clientID int64, update ClientUpdate) error

	// DeletePhone removes a client's phone and returns the number of rows removed
	DeletePhone(ctx context.Context, clientID int64, phoneNumber string) (int64, error)

	// DeleteClient removes a client together with its phones
	DeleteClient(ctx context.Context, clientID int64) error

	// FindClients returns the clients matching the filter, ordered by id
	FindClients(ctx context.Context, filter ClientFilter) ([]*Client, error)

	// GetClient returns a single client with its phones
	GetClient(ctx context.Context, clientID int64) (*Client, error)

	// ListClients returns every client, ordered by id
	ListClients(ctx context.Context) ([]*Client, error)

	// ResetSchema drops both tables with all their rows and creates them again
	ResetSchema(ctx context.Context) error
}

// ClientService exposes the client operations to callers
type ClientService interface {
	InitializeSchema(ctx context.Context) error
	CreateClient(ctx context.Context, client *Client) (int64, error)
	AddPhone(ctx context.Context, clientID int64, phoneNumber string) error
	UpdateClient(ctx context.Context, clientID int64, update ClientUpdate) error
	DeletePhone(ctx context.Context, clientID int64, phoneNumber string) (int64, error)
	DeleteClient(ctx context.Context, clientID int64) error
	FindClients(ctx context.Context, filter ClientFilter) ([]*Client, error)
	GetClient(ctx context.Context, clientID int64) (*Client, error)
	ListClients(ctx context.Context) ([]*Client, error)
	ResetSchema(ctx context.Context) error
}
