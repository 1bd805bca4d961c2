package errors

import (
	"context"
	stderrors "errors"

	"github.com/fulmenhq/gofulmen/errors"

	"github.com/riftlens/riftlens/internal/core"
	"github.com/riftlens/riftlens/internal/core/riot"
	"github.com/riftlens/riftlens/internal/metrics"
)

// WrapLookupError maps typed lookup failures onto API error envelopes so
// HTTP callers get the right status code. Branching is on the structured
// error kind, never on message text.
func WrapLookupError(ctx context.Context, err error) *errors.ErrorEnvelope {
	if err == nil {
		return nil
	}

	var invalidIdentity *core.InvalidIdentityError
	if stderrors.As(err, &invalidIdentity) {
		return WrapInvalidInput(ctx, err, "invalid Riot ID")
	}

	var noRanked *core.NoRankedDataError
	if stderrors.As(err, &noRanked) {
		return WrapNotFound(ctx, err, "no solo queue ranked data")
	}

	var apiErr *riot.APIError
	if stderrors.As(err, &apiErr) {
		metrics.RecordUpstreamError(string(apiErr.Kind))
		switch apiErr.Kind {
		case riot.KindNotFound:
			return WrapNotFound(ctx, err, apiErr.Message)
		case riot.KindUnauthenticated:
			return WrapUnauthorized(ctx, err, apiErr.Message)
		case riot.KindForbidden:
			return WrapForbidden(ctx, err, apiErr.Message)
		case riot.KindInvalidRequest:
			return WrapInvalidInput(ctx, err, apiErr.Message)
		case riot.KindRateLimited, riot.KindUpstreamInternal, riot.KindUpstreamUnavailable:
			return WrapExternalService(ctx, err, apiErr.Message)
		}
	}

	return WrapInternal(ctx, err, "lookup failed")
}
