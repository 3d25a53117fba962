package commerce

import "context"

// Credentials are the platform access token and location identifier that the
// session-bootstrap collaborator supplies per request. The client falls back
// to its configured values when the context carries none.
type Credentials struct {
	AccessToken string
	LocationID  string
}

type credentialsKey struct{}

func WithCredentials(ctx context.Context, c Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, c)
}

func CredentialsFromContext(ctx context.Context) (Credentials, bool) {
	c, ok := ctx.Value(credentialsKey{}).(Credentials)
	return c, ok
}
