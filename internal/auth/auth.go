// Package auth carries the authenticated caller through request contexts.
package auth

import (
	"context"
	"slices"

	"school-schedule/internal/models"
)

const RoleAdmin = "admin"

type Principal struct {
	UserID string
	Roles  []string
}

type ctxKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	if !ok || p.UserID == "" {
		return Principal{}, false
	}
	return p, true
}

func (p Principal) IsAdmin() bool {
	return slices.Contains(p.Roles, RoleAdmin)
}

// CanAdminister reports whether the caller owns the school or holds the admin role.
func (p Principal) CanAdminister(school *models.School) bool {
	if school == nil {
		return false
	}
	return p.IsAdmin() || school.OwnerID == p.UserID
}
