package store

import "context"

type prefixed struct {
	inner  Storage
	prefix string
}

// WithPrefix scopes every key of s under prefix, so several profiles can
// share one backend without seeing each other's records.
func WithPrefix(s Storage, prefix string) Storage {
	return &prefixed{inner: s, prefix: prefix}
}

// ProfilePrefix is the key namespace for one profile.
func ProfilePrefix(profileID string) string {
	return "profile/" + profileID + "/"
}

func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Create(ctx context.Context, key, value string) (bool, error) {
	return p.inner.Create(ctx, p.prefix+key, value)
}

func (p *prefixed) Remove(ctx context.Context, key string) error {
	return p.inner.Remove(ctx, p.prefix+key)
}
