package session

import (
	"context"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

type ctxKey struct{}

// WithSession returns a copy of ctx carrying the caller's identity.
func WithSession(ctx context.Context, s entity.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the identity stored by WithSession, if any.
func FromContext(ctx context.Context) (entity.Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(entity.Session)
	return s, ok
}

// Resolver answers "who is calling" from the request context.
type Resolver struct{}

var _ usecasecontract.ISessionResolver = (*Resolver)(nil)

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) UserID(ctx context.Context) (string, bool) {
	s, ok := FromContext(ctx)
	if !ok || s.UserID == "" {
		return "", false
	}
	return s.UserID, true
}

func (r *Resolver) Nickname(ctx context.Context) (string, bool) {
	s, ok := FromContext(ctx)
	if !ok || s.Nickname == "" {
		return "", false
	}
	return s.Nickname, true
}
