package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=20"`
}

func TestStructValid(t *testing.T) {
	err := Struct(signupPayload{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	err := Struct(signupPayload{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Equal(t, "is required", fields["fullName"])
	require.Equal(t, "must be a valid email address", fields["email"])
	require.Equal(t, "must be at least 8 characters", fields["password"])
}

func TestFieldErrorsPasswordTooLong(t *testing.T) {
	err := Struct(signupPayload{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "this password is far too long to accept",
	})
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Equal(t, "must be at most 20 characters", fields["password"])
}

func TestFieldErrorsNonValidatorError(t *testing.T) {
	fields := FieldErrors(errors.New("boom"))
	require.Equal(t, map[string]interface{}{"request": "boom"}, fields)
}

func TestFieldErrorsNil(t *testing.T) {
	require.Nil(t, FieldErrors(nil))
}
