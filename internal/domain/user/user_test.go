package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		hash     string
		wantErr  string
	}{
		{name: "valid user", username: "alice", email: "Alice@Example.com", hash: "$2a$12$hash"},
		{name: "username with separators", username: "a.b-c_d", email: "", hash: "$2a$12$hash"},
		{name: "username too short", username: "ab", hash: "$2a$12$hash", wantErr: "at least 3 characters"},
		{name: "username too long", username: strings.Repeat("u", MaxUsernameLength+1), hash: "$2a$12$hash", wantErr: "maximum length"},
		{name: "username with spaces", username: "al ice", hash: "$2a$12$hash", wantErr: "may only contain"},
		{name: "missing hash", username: "alice", hash: "", wantErr: "password hash is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.username, tt.email, tt.hash)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.username, u.Username())
			assert.Equal(t, strings.ToLower(tt.email), u.Email())
		})
	}
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser("alice", "alice@example.com", "$2a$12$hash")
	require.NoError(t, err)

	require.NoError(t, u.SetID(4))
	assert.Error(t, u.SetID(5))
	assert.Equal(t, uint(4), u.ID())
}
