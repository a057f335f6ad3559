package resolver

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/did/w3cdid"
	"golang.org/x/sync/singleflight"
)

var _ did.Resolver = (*Cached)(nil)

// Cached memoizes successful resolutions of an upstream resolver for ttl.
// Concurrent lookups of the same DID share one upstream call.
type Cached struct {
	upstream did.Resolver
	docs     *expirable.LRU[string, *w3cdid.Document]
	group    singleflight.Group
}

func NewCached(upstream did.Resolver, size int, ttl time.Duration) *Cached {
	return &Cached{
		upstream: upstream,
		docs:     expirable.NewLRU[string, *w3cdid.Document](size, nil, ttl),
	}
}

func (c *Cached) ResolveDID(ctx context.Context, id string) (*w3cdid.Document, error) {
	id = w3cdid.URL(id).DID()

	if doc, ok := c.docs.Get(id); ok {
		return doc, nil
	}

	v, err, _ := c.group.Do(id, func() (interface{}, error) {
		doc, err := c.upstream.ResolveDID(ctx, id)
		if err != nil {
			return nil, err
		}

		c.docs.Add(id, doc)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*w3cdid.Document), nil
}

// Purge drops a cached document, e.g. after a key rotation.
func (c *Cached) Purge(id string) {
	c.docs.Remove(w3cdid.URL(id).DID())
}
