package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() map[string]any {
	return map[string]any{
		"lastname":  "Smith",
		"firstname": "John",
		"email":     "john.smith@example.com",
		"subject":   "Test Notification",
		"details":   "This is a test notification",
	}
}

func TestNotificationInput_Valid(t *testing.T) {
	res := NotificationInput(validInput())
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestNotificationInput_RequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any // nil means delete the field
		want  string
	}{
		{"lastname missing", "lastname", nil, "lastname is required and must be a non-empty string"},
		{"lastname empty", "lastname", "", "lastname is required and must be a non-empty string"},
		{"lastname whitespace", "lastname", "   ", "lastname is required and must be a non-empty string"},
		{"lastname wrong type", "lastname", 42, "lastname is required and must be a non-empty string"},
		{"firstname missing", "firstname", nil, "firstname is required and must be a non-empty string"},
		{"firstname whitespace", "firstname", "\t\n", "firstname is required and must be a non-empty string"},
		{"email missing", "email", nil, "email is required and must be a non-empty string"},
		{"email empty", "email", "", "email is required and must be a non-empty string"},
		{"email wrong type", "email", true, "email is required and must be a non-empty string"},
		{"subject missing", "subject", nil, "subject is required and must be a non-empty string"},
		{"details missing", "details", nil, "details is required and must be a non-empty string"},
		{"details wrong type", "details", []any{"x"}, "details is required and must be a non-empty string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			if tt.value == nil {
				delete(in, tt.field)
			} else {
				in[tt.field] = tt.value
			}
			res := NotificationInput(in)
			assert.False(t, res.IsValid)
			assert.Equal(t, []string{tt.want}, res.Errors)
		})
	}
}

func TestNotificationInput_EmailShape(t *testing.T) {
	malformed := []string{
		"invalid-email",
		"no-at-sign.com",
		"missing-domain@",
		"@missing-local.com",
		"no-dot@domain",
		"two@@example.com",
		"spaces in@example.com",
		" leading@example.com",
	}
	for _, email := range malformed {
		in := validInput()
		in["email"] = email
		res := NotificationInput(in)
		assert.False(t, res.IsValid, "email %q should be rejected", email)
		assert.Equal(t, []string{"email must be a valid email address"}, res.Errors)
	}

	wellFormed := []string{"a@b.co", "john.smith@example.com", "user+tag@sub.domain.org"}
	for _, email := range wellFormed {
		in := validInput()
		in["email"] = email
		res := NotificationInput(in)
		assert.True(t, res.IsValid, "email %q should be accepted", email)
	}
}

func TestNotificationInput_CollectsAllFailuresInOrder(t *testing.T) {
	res := NotificationInput(map[string]any{
		"lastname":  "",
		"firstname": "Jane",
		"email":     "invalid-email",
		"subject":   "Test",
		"details":   "Test details",
	})

	assert.False(t, res.IsValid)
	assert.Equal(t, []string{
		"lastname is required and must be a non-empty string",
		"email must be a valid email address",
	}, res.Errors)
}

func TestNotificationInput_NilMap(t *testing.T) {
	res := NotificationInput(nil)
	assert.False(t, res.IsValid)
	assert.Equal(t, []string{
		"lastname is required and must be a non-empty string",
		"firstname is required and must be a non-empty string",
		"email is required and must be a non-empty string",
		"subject is required and must be a non-empty string",
		"details is required and must be a non-empty string",
	}, res.Errors)
}
