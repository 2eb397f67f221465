package auth

import (
	"context"

	"canasta/internal/model"
	"canasta/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Resolver maps a caller token to a known user account. All resolution
// failures surface as the same opaque unauthenticated error: a caller must
// not be able to distinguish a malformed token from a nonexistent account.
type Resolver struct {
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewResolver creates a new identity resolver.
func NewResolver(users repository.UserRepository, logger zerolog.Logger) *Resolver {
	return &Resolver{
		users:  users,
		logger: logger.With().Str("component", "identity-resolver").Logger(),
	}
}

// Resolve returns the user identified by the given token.
func (r *Resolver) Resolve(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, model.ErrMissingCallerID
	}

	id, err := uuid.Parse(token)
	if err != nil {
		r.logger.Debug().Msg("caller token is not a valid user id")
		return nil, model.ErrUnknownCaller
	}

	user, err := r.users.GetByID(ctx, id)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to resolve caller identity")
		return nil, model.ErrUnknownCaller
	}
	if user == nil {
		r.logger.Debug().Str("user_id", id.String()).Msg("caller token does not match a known user")
		return nil, model.ErrUnknownCaller
	}

	return user, nil
}

// callerKey is the context key under which the resolved caller is stored.
// The caller is resolved once per request by the identity middleware and
// threaded through the request context, never cached process-wide.
type callerKey struct{}

// WithCaller returns a context carrying the resolved caller.
func WithCaller(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, callerKey{}, user)
}

// CallerFrom extracts the resolved caller from the context.
func CallerFrom(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(callerKey{}).(*model.User)
	return user, ok && user != nil
}
