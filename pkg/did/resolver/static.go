package resolver

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/did/w3cdid"
)

var _ did.Resolver = (*Static)(nil)

// Static serves documents registered in process.
type Static struct {
	mu   sync.RWMutex
	docs map[string]*w3cdid.Document
}

func NewStatic(docs ...*w3cdid.Document) *Static {
	s := &Static{docs: make(map[string]*w3cdid.Document, len(docs))}
	for _, d := range docs {
		s.Add(d)
	}

	return s
}

func (s *Static) Add(doc *w3cdid.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[doc.ID] = doc
}

func (s *Static) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, id)
}

func (s *Static) ResolveDID(_ context.Context, id string) (*w3cdid.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[w3cdid.URL(id).DID()]
	if !ok {
		return nil, errors.Wrapf(did.ErrDIDNotFound, "%s", id)
	}

	return doc, nil
}
