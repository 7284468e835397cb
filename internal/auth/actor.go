package auth

import "context"

// Actor is the identity performing a request, used for createdBy/updatedBy
// audit stamping. It comes from a verified JWT when auth is configured, or
// from the configured fallback identity otherwise.
type Actor struct {
	Name  string
	Email string
	Role  string
}

func (a Actor) Stamp() string {
	if a.Email != "" {
		return a.Email
	}
	if a.Name != "" {
		return a.Name
	}
	return "system"
}

type actorKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) Actor {
	if v := ctx.Value(actorKey{}); v != nil {
		if a, ok := v.(Actor); ok {
			return a
		}
	}
	return Actor{Name: "system", Email: "system@localhost"}
}
