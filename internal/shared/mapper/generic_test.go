package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	got := MapSlice([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestMapSlice_Nil(t *testing.T) {
	assert.Nil(t, MapSlice(nil, strconv.Itoa))
}

type source struct {
	ID    uint
	Value string
}

type target struct {
	Value string
}

func TestMapSlicePtrWithID(t *testing.T) {
	items := []*source{
		{ID: 1, Value: "a"},
		nil,
		{ID: 2, Value: "b"},
	}

	got, err := MapSlicePtrWithID(items,
		func(s *source) (*target, error) { return &target{Value: s.Value}, nil },
		func(s *source) uint { return s.ID },
	)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Value)
	assert.Equal(t, "b", got[1].Value)
}

func TestMapSlicePtrWithID_ErrorIncludesID(t *testing.T) {
	items := []*source{{ID: 42, Value: "bad"}}

	_, err := MapSlicePtrWithID(items,
		func(s *source) (*target, error) { return nil, errors.New("boom") },
		func(s *source) uint { return s.ID },
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "42")
}
