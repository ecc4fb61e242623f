package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Validate(t *testing.T) {
	tests := []struct {
		name    string
		client  Client
		wantErr string
	}{
		{
			name:   "valid client",
			client: Client{FirstName: "Boris", LastName: "Ivanov", Email: "borisivanov@mail.ru"},
		},
		{
			name:   "valid client with phones",
			client: Client{FirstName: "Boris", LastName: "Ivanov", Email: "borisivanov@mail.ru", Phones: []string{"79301506287", "79301506288"}},
		},
		{
			name:   "cyrillic names within column width",
			client: Client{FirstName: strings.Repeat("Б", 150), LastName: "Иванов", Email: "boris@mail.ru"},
		},
		{
			name:    "missing first name",
			client:  Client{LastName: "Ivanov", Email: "borisivanov@mail.ru"},
			wantErr: "first_name is required",
		},
		{
			name:    "blank last name",
			client:  Client{FirstName: "Boris", LastName: "   ", Email: "borisivanov@mail.ru"},
			wantErr: "last_name is required",
		},
		{
			name:    "first name too long",
			client:  Client{FirstName: strings.Repeat("a", 151), LastName: "Ivanov", Email: "borisivanov@mail.ru"},
			wantErr: "first_name length must be between 1 and 150",
		},
		{
			name:    "missing email",
			client:  Client{FirstName: "Boris", LastName: "Ivanov"},
			wantErr: "email is required",
		},
		{
			name:    "malformed email",
			client:  Client{FirstName: "Boris", LastName: "Ivanov", Email: "borisivanov"},
			wantErr: "is not a valid address",
		},
		{
			name:    "empty phone",
			client:  Client{FirstName: "Boris", LastName: "Ivanov", Email: "borisivanov@mail.ru", Phones: []string{""}},
			wantErr: "phone_number is required",
		},
		{
			name:    "duplicate phone",
			client:  Client{FirstName: "Boris", LastName: "Ivanov", Email: "borisivanov@mail.ru", Phones: []string{"79301506287", "79301506287"}},
			wantErr: "listed twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.client.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var validationErr ValidationError
			assert.True(t, errors.As(err, &validationErr))
		})
	}
}

func TestClientUpdate(t *testing.T) {
	t.Run("empty update", func(t *testing.T) {
		u := ClientUpdate{}
		assert.True(t, u.IsEmpty())
		assert.Empty(t, u.Fields())
		assert.NoError(t, u.Validate())
	})

	t.Run("only set fields are returned", func(t *testing.T) {
		u := ClientUpdate{FirstName: "Ivan"}
		assert.False(t, u.IsEmpty())
		assert.Equal(t, map[string]interface{}{"first_name": "Ivan"}, u.Fields())
	})

	t.Run("all fields", func(t *testing.T) {
		u := ClientUpdate{FirstName: "Ivan", LastName: "Petrov", Email: "ivan@mail.ru"}
		assert.Equal(t, map[string]interface{}{
			"first_name": "Ivan",
			"last_name":  "Petrov",
			"email":      "ivan@mail.ru",
		}, u.Fields())
		assert.NoError(t, u.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		u := ClientUpdate{Email: "not-an-email"}
		err := u.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a valid address")
	})

	t.Run("last name too long", func(t *testing.T) {
		u := ClientUpdate{LastName: strings.Repeat("x", 151)}
		assert.Error(t, u.Validate())
	})
}

func TestClientFilter(t *testing.T) {
	assert.True(t, ClientFilter{}.IsEmpty())
	assert.False(t, ClientFilter{ID: 1}.IsEmpty())
	assert.False(t, ClientFilter{Phone: "79301506287"}.IsEmpty())

	err := ClientFilter{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one filter field is required")

	err = ClientFilter{ID: -1}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id must be positive")

	assert.NoError(t, ClientFilter{FirstName: "Ivan"}.Validate())

	// phone wins, so the other fields are never looked at
	assert.NoError(t, ClientFilter{ID: -1, Phone: "79301506287"}.Validate())
}

func TestValidateClientID(t *testing.T) {
	assert.NoError(t, ValidateClientID(1))
	assert.Error(t, ValidateClientID(0))
	assert.Error(t, ValidateClientID(-5))
}

func TestValidatePhoneNumber(t *testing.T) {
	assert.NoError(t, ValidatePhoneNumber("79301506287"))
	assert.NoError(t, ValidatePhoneNumber("+7 (930) 150-62-87"))
	assert.Error(t, ValidatePhoneNumber(""))
	assert.Error(t, ValidatePhoneNumber(strings.Repeat("1", 31)))
}

type fakeScanner struct {
	values []interface{}
	err    error
}

func (s fakeScanner) Scan(dest ...interface{}) error {
	if s.err != nil {
		return s.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = s.values[i].(int64)
		case *string:
			*p = s.values[i].(string)
		}
	}
	return nil
}

func TestScanClient(t *testing.T) {
	client, err := ScanClient(fakeScanner{values: []interface{}{int64(1), "Boris", "Ivanov", "borisivanov@mail.ru"}})
	require.NoError(t, err)
	assert.Equal(t, &Client{ID: 1, FirstName: "Boris", LastName: "Ivanov", Email: "borisivanov@mail.ru"}, client)

	_, err = ScanClient(fakeScanner{err: errors.New("scan failed")})
	assert.EqualError(t, err, "scan failed")
}

func TestScanPhone(t *testing.T) {
	phone, err := ScanPhone(fakeScanner{values: []interface{}{int64(3), int64(1), "79301506287"}})
	require.NoError(t, err)
	assert.Equal(t, &Phone{ID: 3, ClientID: 1, PhoneNumber: "79301506287"}, phone)
}
