package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftlens/riftlens/internal/core"
	"github.com/riftlens/riftlens/internal/core/riot"
)

func TestWrapLookupError(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, WrapLookupError(ctx, nil))
	})

	t.Run("InvalidIdentity", func(t *testing.T) {
		envelope := WrapLookupError(ctx, &core.InvalidIdentityError{Input: "nope"})
		require.NotNil(t, envelope)
		assert.Equal(t, "INVALID_INPUT", envelope.Code)
	})

	t.Run("NoRankedData", func(t *testing.T) {
		envelope := WrapLookupError(ctx, &core.NoRankedDataError{RiotID: "Faker#KR1"})
		require.NotNil(t, envelope)
		assert.Equal(t, "NOT_FOUND", envelope.Code)
	})

	t.Run("APIErrorKinds", func(t *testing.T) {
		cases := []struct {
			kind riot.ErrorKind
			code string
		}{
			{riot.KindNotFound, "NOT_FOUND"},
			{riot.KindUnauthenticated, "UNAUTHORIZED"},
			{riot.KindForbidden, "FORBIDDEN"},
			{riot.KindInvalidRequest, "INVALID_INPUT"},
			{riot.KindRateLimited, "EXTERNAL_SERVICE_ERROR"},
			{riot.KindUpstreamInternal, "EXTERNAL_SERVICE_ERROR"},
			{riot.KindUpstreamUnavailable, "EXTERNAL_SERVICE_ERROR"},
			{riot.KindUnknown, "INTERNAL_ERROR"},
		}

		for _, tc := range cases {
			err := &riot.APIError{Kind: tc.kind, Message: "upstream said no"}
			envelope := WrapLookupError(ctx, err)
			require.NotNil(t, envelope, "kind %s", tc.kind)
			assert.Equal(t, tc.code, envelope.Code, "kind %s", tc.kind)
		}
	})

	t.Run("UnknownError", func(t *testing.T) {
		envelope := WrapLookupError(ctx, fmt.Errorf("something odd"))
		require.NotNil(t, envelope)
		assert.Equal(t, "INTERNAL_ERROR", envelope.Code)
	})
}
