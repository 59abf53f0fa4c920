package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollector_NoFailures(t *testing.T) {
	col := NewCollector()
	col.Required("name", "Jane", "missing")
	assert.NoError(t, col.Errors())
}

func TestCollector_CollectsEveryFailure(t *testing.T) {
	col := NewCollector()
	col.Required("name", "", "Please enter your Name!")
	col.Required("email", "", "Please enter your Email!")

	err := col.Errors()
	assert.Error(t, err)

	verrs, ok := err.(Errors)
	assert.True(t, ok)
	assert.Len(t, verrs, 2)
	assert.True(t, verrs.Has("name"))
	assert.True(t, verrs.Has("email"))
	assert.Contains(t, err.Error(), "Please enter your Name!")
}

func TestCollector_LengthBetween(t *testing.T) {
	cases := []struct {
		name  string
		value string
		wantE bool
	}{
		{"below min", "ab", true},
		{"at min", "abc", false},
		{"at max", "123456789012345678901234567890", false},
		{"above max", "1234567890123456789012345678901", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			col := NewCollector()
			col.LengthBetween("name", tc.value, 3, 30, "too short", "too long")
			if tc.wantE {
				assert.Error(t, col.Errors())
			} else {
				assert.NoError(t, col.Errors())
			}
		})
	}
}

func TestCollector_MinLength(t *testing.T) {
	col := NewCollector()
	col.MinLength("location", "short street", 20, "too short")
	assert.Error(t, col.Errors())

	col = NewCollector()
	col.MinLength("location", strings.Repeat("x", 70000), 20, "too short")
	assert.NoError(t, col.Errors(), "a min-only rule has no upper bound")
}

func TestCollector_Email(t *testing.T) {
	for _, valid := range []string{"jane@x.com", "a.b@sub.example.org"} {
		col := NewCollector()
		col.Email("email", valid, "bad email")
		assert.NoError(t, col.Errors(), valid)
	}
	for _, invalid := range []string{"", "jane", "jane@", "@x.com", "jane x@x.com", "jane@xcom"} {
		col := NewCollector()
		col.Email("email", invalid, "bad email")
		assert.Error(t, col.Errors(), invalid)
	}
}

func TestCollector_Phone(t *testing.T) {
	for _, valid := range []string{"+15551234567", "0712345678", "020 7946 0958"} {
		col := NewCollector()
		col.Phone("phone", valid, "bad phone")
		assert.NoError(t, col.Errors(), valid)
	}
	for _, invalid := range []string{"", "12345", "phone-number", "+1 (555) abc"} {
		col := NewCollector()
		col.Phone("phone", invalid, "bad phone")
		assert.Error(t, col.Errors(), invalid)
	}
}

func TestCollector_OneOf(t *testing.T) {
	col := NewCollector()
	col.OneOf("role", "Employer", []string{"Job Seeker", "Employer"}, "bad role")
	assert.NoError(t, col.Errors())

	col = NewCollector()
	col.OneOf("role", "Admin", []string{"Job Seeker", "Employer"}, "bad role")
	assert.Error(t, col.Errors())
}
