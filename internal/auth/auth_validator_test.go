package auth_test

import (
	"testing"

	"go-employees/internal/auth"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		want     []string
	}{
		{
			name:     "all valid",
			username: "annlee",
			email:    "ann@x.com",
			password: "secret1",
			want:     nil,
		},
		{
			name:     "username missing",
			username: "   ",
			email:    "ann@x.com",
			password: "secret1",
			want:     []string{"Username is required"},
		},
		{
			name:     "username too short",
			username: "ab",
			email:    "ann@x.com",
			password: "secret1",
			want:     []string{"Username must be at least 3 characters"},
		},
		{
			name:     "username trimmed before length check",
			username: "  ab  ",
			email:    "ann@x.com",
			password: "secret1",
			want:     []string{"Username must be at least 3 characters"},
		},
		{
			name:     "username length counts characters not bytes",
			username: "ñé",
			email:    "ann@x.com",
			password: "secret1",
			want:     []string{"Username must be at least 3 characters"},
		},
		{
			name:     "three multibyte characters are enough",
			username: "ñéå",
			email:    "ann@x.com",
			password: "secret1",
			want:     nil,
		},
		{
			name:     "password length counts characters not bytes",
			username: "annlee",
			email:    "ann@x.com",
			password: "ñéñéñ",
			want:     []string{"Password must be at least 6 characters"},
		},
		{
			name:     "email missing",
			username: "annlee",
			email:    "",
			password: "secret1",
			want:     []string{"Email is required"},
		},
		{
			name:     "email malformed",
			username: "annlee",
			email:    "not-an-email",
			password: "secret1",
			want:     []string{"Please enter a valid email address"},
		},
		{
			name:     "email without tld",
			username: "annlee",
			email:    "ann@host",
			password: "secret1",
			want:     []string{"Please enter a valid email address"},
		},
		{
			name:     "password missing",
			username: "annlee",
			email:    "ann@x.com",
			password: "",
			want:     []string{"Password is required"},
		},
		{
			name:     "password too short",
			username: "annlee",
			email:    "ann@x.com",
			password: "12345",
			want:     []string{"Password must be at least 6 characters"},
		},
		{
			name:     "all rules violated reported together",
			username: "ab",
			email:    "bad",
			password: "123",
			want: []string{
				"Username must be at least 3 characters",
				"Please enter a valid email address",
				"Password must be at least 6 characters",
			},
		},
		{
			name:     "everything empty",
			username: "",
			email:    "",
			password: "",
			want: []string{
				"Username is required",
				"Email is required",
				"Password is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := auth.ValidateSignup(tt.username, tt.email, tt.password)
			assert.Equal(t, tt.want, got)
		})
	}
}
