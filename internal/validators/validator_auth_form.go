package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/doin-client/models"
)

// MinPasswordLength is the shortest password accepted by the register and
// forgot-password forms.
const MinPasswordLength = 8

const (
	FieldUsername         = "username"
	FieldPassword         = "password"
	FieldConfirmPassword  = "confirmPassword"
	FieldSecurityQuestion = "securityQuestion"
	FieldSecurityAnswer   = "securityAnswer"
)

// AuthFormValidator checks the anonymous-area forms (login, register, forgot
// password) before anything is sent to the backend. Checks run in a fixed
// order: required fields, password confirmation, password length.
type AuthFormValidator struct {
}

func NewAuthFormValidator() Validator {
	return &AuthFormValidator{}
}

// Validate implements [Validator]. When fields are given, only the named
// fields are checked for presence; the password rules always apply to
// registration and password reset payloads.
func (v *AuthFormValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.RegistrationData:
		return v.validateRegistration(value, fields...)
	case *models.RegistrationData:
		return v.validateRegistration(*value, fields...)

	case models.ForgotPasswordData:
		return v.validateForgotPassword(value, fields...)
	case *models.ForgotPasswordData:
		return v.validateForgotPassword(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthFormValidator) validateCredentials(c models.Credentials, fields ...string) error {
	return requireFields(map[string]string{
		FieldUsername: c.Username,
		FieldPassword: c.Password,
	}, []string{FieldUsername, FieldPassword}, fields)
}

func (v *AuthFormValidator) validateRegistration(r models.RegistrationData, fields ...string) error {
	err := requireFields(map[string]string{
		FieldUsername:         r.Username,
		FieldPassword:         r.Password,
		FieldConfirmPassword:  r.ConfirmPassword,
		FieldSecurityQuestion: r.SecurityQuestion,
		FieldSecurityAnswer:   r.SecurityAnswer,
	}, []string{FieldUsername, FieldPassword, FieldConfirmPassword, FieldSecurityQuestion, FieldSecurityAnswer}, fields)
	if err != nil {
		return err
	}

	return validatePasswordPair(r.Password, r.ConfirmPassword)
}

func (v *AuthFormValidator) validateForgotPassword(f models.ForgotPasswordData, fields ...string) error {
	err := requireFields(map[string]string{
		FieldUsername:         f.Username,
		FieldSecurityQuestion: f.SecurityQuestionValue,
		FieldSecurityAnswer:   f.SecurityQuestionAnswer,
		FieldPassword:         f.Password,
		FieldConfirmPassword:  f.ConfirmPassword,
	}, []string{FieldUsername, FieldSecurityQuestion, FieldSecurityAnswer, FieldPassword, FieldConfirmPassword}, fields)
	if err != nil {
		return err
	}

	return validatePasswordPair(f.Password, f.ConfirmPassword)
}

// requireFields checks values in the order given by all, or only the
// requested subset when only is not empty.
func requireFields(values map[string]string, all []string, only []string) error {
	check := all
	if len(only) > 0 {
		check = only
	}

	for _, name := range check {
		value, known := values[name]
		if !known {
			return &ValidationError{Field: name, Err: ErrUnknownField}
		}
		if strings.TrimSpace(value) == "" {
			return &ValidationError{Field: name, Err: ErrRequiredField}
		}
	}

	return nil
}

func validatePasswordPair(password, confirm string) error {
	if password != confirm {
		return &ValidationError{Field: FieldConfirmPassword, Err: ErrPasswordsMismatch}
	}
	if len(password) < MinPasswordLength {
		return &ValidationError{Field: FieldPassword, Err: ErrPasswordTooShort}
	}
	return nil
}
