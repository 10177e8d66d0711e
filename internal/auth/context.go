package auth

import (
	"context"

	"github.com/xarthos/portfolio-server/internal/user"
)

type ctxKey int

const (
	userKey ctxKey = iota
	sessionKey
	sinkKey
)

// Session is the per-request marker carried alongside the resolved
// user.
type Session struct {
	IsAuth bool
}

func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFrom returns the user the request context carries, or nil for an
// anonymous request.
func UserFrom(ctx context.Context) *user.User {
	u, _ := ctx.Value(userKey).(*user.User)
	return u
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

func SessionFrom(ctx context.Context) Session {
	s, _ := ctx.Value(sessionKey).(Session)
	return s
}

func WithSink(ctx context.Context, sink HeaderSink) context.Context {
	return context.WithValue(ctx, sinkKey, sink)
}

// SinkFrom returns the response sink for the request. A context without
// one yields a sink that drops writes, so cookie attachment stays
// non-fatal everywhere.
func SinkFrom(ctx context.Context) HeaderSink {
	if sink, ok := ctx.Value(sinkKey).(HeaderSink); ok {
		return sink
	}
	return discardSink{}
}

type discardSink struct{}

func (discardSink) SetHeader(string, string) error { return nil }
