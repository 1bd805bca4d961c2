package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentity(t *testing.T) {
	t.Run("ValidIdentity", func(t *testing.T) {
		identity, err := ParseIdentity("Faker#KR1")
		require.NoError(t, err)
		assert.Equal(t, "Faker", identity.GameName)
		assert.Equal(t, "KR1", identity.TagLine)
	})

	t.Run("PreservesCase", func(t *testing.T) {
		identity, err := ParseIdentity("HideOnBush#kr1")
		require.NoError(t, err)
		assert.Equal(t, "HideOnBush", identity.GameName)
		assert.Equal(t, "kr1", identity.TagLine)
	})

	t.Run("String", func(t *testing.T) {
		identity, err := ParseIdentity("Doublelift#NA1")
		require.NoError(t, err)
		assert.Equal(t, "Doublelift#NA1", identity.String())
	})

	invalid := []struct {
		name  string
		input string
	}{
		{"NoSeparator", "Faker"},
		{"TwoSeparators", "Fa#ker#KR1"},
		{"EmptyGameName", "#KR1"},
		{"EmptyTagLine", "Faker#"},
		{"Empty", ""},
		{"OnlySeparator", "#"},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseIdentity(tc.input)
			require.Error(t, err)

			var invalidErr *InvalidIdentityError
			assert.True(t, errors.As(err, &invalidErr), "expected InvalidIdentityError, got %T", err)
		})
	}
}
