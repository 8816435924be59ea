// Package authz holds the request principal and club-scoped access
// checks. How the principal is established (admin key, reverse proxy,
// upstream identity service) is the caller's concern; nothing in here
// deals with credentials or sessions.
package authz

import (
	"context"
	"errors"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

type AuthUser struct {
	ID         int64
	IsAdmin    bool
	HomeClubID *int64
}

type userContextKey struct{}

func ContextWithUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext retrieves the AuthUser stored in ctx. It returns nil
// if ctx is nil, if no user is stored, or if the stored value has a
// different type.
func UserFromContext(ctx context.Context) *AuthUser {
	if ctx == nil {
		return nil
	}

	user, ok := ctx.Value(userContextKey{}).(*AuthUser)
	if !ok {
		return nil
	}

	return user
}

// IsAdmin reports whether the given AuthUser is an admin.
func IsAdmin(user *AuthUser) bool {
	return user != nil && user.IsAdmin
}

// RequireClubAccess checks that the user in ctx may administer the given
// club. Admins without a home club may administer any club; admins with
// one are limited to it.
func RequireClubAccess(ctx context.Context, requestedClubID int64) error {
	user := UserFromContext(ctx)
	if user == nil {
		return ErrUnauthenticated
	}
	if !user.IsAdmin {
		return ErrForbidden
	}
	if user.HomeClubID != nil && *user.HomeClubID != requestedClubID {
		return ErrForbidden
	}
	return nil
}
