package userservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mirrelia/inkwell/internal/common"
)

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		name        string
		email       string
		expectedErr map[string]string
	}{
		{
			name:        "valid email",
			email:       "alice@example.com",
			expectedErr: map[string]string{},
		},
		{
			name:        "empty email",
			email:       "",
			expectedErr: map[string]string{"email": "must be provided"},
		},
		{
			name:        "missing domain",
			email:       "alice@",
			expectedErr: map[string]string{"email": "must be a valid email address"},
		},
		{
			name:        "missing at sign",
			email:       "alice.example.com",
			expectedErr: map[string]string{"email": "must be a valid email address"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateEmail(v, tc.email)
			assert.Equal(t, tc.expectedErr, v.Errors)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	v := common.NewValidator()
	validatePassword(v, "")
	assert.Equal(t, map[string]string{"password": "must be provided"}, v.Errors)

	v = common.NewValidator()
	validatePassword(v, strings.Repeat("a", 73))
	assert.Equal(t, map[string]string{"password": "must not be more than 72 characters long"}, v.Errors)

	v = common.NewValidator()
	validatePassword(v, "pw1")
	assert.True(t, v.Valid())
}

func TestValidateName(t *testing.T) {
	v := common.NewValidator()
	validateName(v, "")
	assert.Equal(t, map[string]string{"name": "must be provided"}, v.Errors)

	v = common.NewValidator()
	validateName(v, "Alice")
	assert.True(t, v.Valid())
}
