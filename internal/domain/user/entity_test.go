package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"job-portal/internal/pkg/validate"
)

func validInput() Input {
	return Input{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "+15551234567",
		Password: "longenough1",
		Role:     RoleJobSeeker,
	}
}

func TestInput_Validate_OK(t *testing.T) {
	assert.NoError(t, validInput().Validate())
}

func TestInput_Validate_NameBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		value string
		wantE bool
	}{
		{"two chars rejected", "ab", true},
		{"three chars accepted", "abc", false},
		{"thirty chars accepted", strings.Repeat("a", 30), false},
		{"thirty-one chars rejected", strings.Repeat("a", 31), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Name = tc.value
			err := in.Validate()
			if tc.wantE {
				verrs := err.(validate.Errors)
				assert.True(t, verrs.Has("name"))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInput_Validate_PasswordBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		value string
		wantE bool
	}{
		{"seven chars rejected", strings.Repeat("p", 7), true},
		{"eight chars accepted", strings.Repeat("p", 8), false},
		{"thirty-two chars accepted", strings.Repeat("p", 32), false},
		{"thirty-three chars rejected", strings.Repeat("p", 33), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Password = tc.value
			err := in.Validate()
			if tc.wantE {
				verrs := err.(validate.Errors)
				assert.True(t, verrs.Has("password"))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInput_Validate_MissingEverything(t *testing.T) {
	err := Input{}.Validate()
	assert.Error(t, err)

	verrs := err.(validate.Errors)
	for _, field := range []string{"name", "email", "phone", "password", "role"} {
		assert.True(t, verrs.Has(field), field)
	}
}

func TestInput_Validate_Role(t *testing.T) {
	in := validInput()
	in.Role = "Admin"
	err := in.Validate()
	assert.Error(t, err)
	assert.True(t, err.(validate.Errors).Has("role"))

	in.Role = RoleEmployer
	assert.NoError(t, in.Validate())
}
