package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		image       string
		ownerID     uint
		wantErr     string
	}{
		{
			name:        "valid ticket",
			title:       "Dune",
			description: "Looking for opinions on the new translation",
			ownerID:     1,
		},
		{
			name:    "valid ticket without description",
			title:   "The Dispossessed",
			ownerID: 2,
		},
		{
			name:    "empty title",
			title:   "",
			ownerID: 1,
			wantErr: "title is required",
		},
		{
			name:    "whitespace title",
			title:   "   ",
			ownerID: 1,
			wantErr: "title is required",
		},
		{
			name:    "title too long",
			title:   strings.Repeat("a", MaxTitleLength+1),
			ownerID: 1,
			wantErr: "title exceeds maximum length",
		},
		{
			name:        "description too long",
			title:       "Dune",
			description: strings.Repeat("b", MaxDescriptionLength+1),
			ownerID:     1,
			wantErr:     "description exceeds maximum length",
		},
		{
			name:    "missing owner",
			title:   "Dune",
			ownerID: 0,
			wantErr: "owner ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.title, tt.description, tt.image, tt.ownerID)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.title), tk.Title())
			assert.Equal(t, tt.description, tk.Description())
			assert.Equal(t, tt.ownerID, tk.OwnerID())
			assert.False(t, tk.CreatedAt().IsZero())
			assert.Zero(t, tk.ID())
		})
	}
}

func TestTicket_UpdateDetails(t *testing.T) {
	tk, err := NewTicket("Original", "desc", "", 1)
	require.NoError(t, err)

	created := tk.CreatedAt()

	err = tk.UpdateDetails("Updated", "new desc", "covers/updated.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Updated", tk.Title())
	assert.Equal(t, "new desc", tk.Description())
	assert.Equal(t, "covers/updated.jpg", tk.Image())

	// owner and creation time survive edits
	assert.Equal(t, uint(1), tk.OwnerID())
	assert.Equal(t, created, tk.CreatedAt())
}

func TestTicket_UpdateDetails_Invalid(t *testing.T) {
	tk, err := NewTicket("Original", "", "", 1)
	require.NoError(t, err)

	err = tk.UpdateDetails("", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	assert.Equal(t, "Original", tk.Title())
}

func TestTicket_SetID(t *testing.T) {
	tk, err := NewTicket("Dune", "", "", 1)
	require.NoError(t, err)

	require.NoError(t, tk.SetID(7))
	assert.Equal(t, uint(7), tk.ID())

	assert.Error(t, tk.SetID(8))
	assert.Equal(t, uint(7), tk.ID())
}

func TestReconstructTicket(t *testing.T) {
	now := time.Now()

	tk, err := ReconstructTicket(3, "Dune", "desc", "covers/dune.jpg", 9, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(3), tk.ID())
	assert.Equal(t, uint(9), tk.OwnerID())

	_, err = ReconstructTicket(0, "Dune", "", "", 9, now, now)
	assert.Error(t, err)

	_, err = ReconstructTicket(3, "", "", "", 9, now, now)
	assert.Error(t, err)
}
