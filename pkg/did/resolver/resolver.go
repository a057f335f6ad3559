package resolver

import (
	"context"
	"net"
	"net/http"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/did/w3cdid"
)

var (
	ErrUnknownMethod = errors.New("unknown did method")
)

var _ did.Resolver = (*Resolver)(nil)

// Resolver resolves a public DID via any supported DID method
type Resolver struct {
	httpClient *http.Client
	insecure   bool
	nameServer string
	fallback   did.Resolver
}

type Option func(*Resolver) error

// WithHTTPClient sets the client used for did:web lookups.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) error {
		r.httpClient = c
		return nil
	}
}

// WithInsecureWeb resolves did:web documents over plain http.
func WithInsecureWeb() Option {
	return func(r *Resolver) error {
		r.insecure = true
		return nil
	}
}

// WithNameServer sets the host:port queried for did:dns records.
func WithNameServer(addr string) Option {
	return func(r *Resolver) error {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return errors.Wrap(err, "name server address")
		}
		r.nameServer = addr
		return nil
	}
}

// WithFallback handles DID methods the resolver does not know.
func WithFallback(f did.Resolver) Option {
	return func(r *Resolver) error {
		r.fallback = f
		return nil
	}
}

func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{httpClient: http.DefaultClient}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, errors.Wrap(err, "applying option")
		}
	}

	return r, nil
}

func (r *Resolver) ResolveDID(ctx context.Context, id string) (*w3cdid.Document, error) {
	u := w3cdid.URL(w3cdid.URL(id).DID())

	switch u.Method() {
	case "key":
		return resolveKey(u)
	case "web":
		return r.resolveWeb(ctx, u)
	case "dns":
		return r.resolveDNS(ctx, u)
	default:
		if r.fallback != nil {
			return r.fallback.ResolveDID(ctx, string(u))
		}
		return nil, errors.Wrapf(ErrUnknownMethod, "%s", u.Method())
	}
}
