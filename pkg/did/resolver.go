package did

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/did/w3cdid"
)

var ErrDIDNotFound = errors.New("did not found")

// Resolver allows for a DID to be resolved agnostically any given source
type Resolver interface {
	ResolveDID(ctx context.Context, did string) (*w3cdid.Document, error)
}

// ResolverFunc adapts a function to a Resolver.
type ResolverFunc func(ctx context.Context, did string) (*w3cdid.Document, error)

func (f ResolverFunc) ResolveDID(ctx context.Context, did string) (*w3cdid.Document, error) {
	return f(ctx, did)
}
