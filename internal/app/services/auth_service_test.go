package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	svc := &AuthService{}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid password", "passw0rd", false},
		{"too short", "pw1", true},
		{"no digit", "passwords", true},
		{"no letter", "12345678", true},
		{"long mixed", "correct-horse-battery-staple-9", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.validatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
