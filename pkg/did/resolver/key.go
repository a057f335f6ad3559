package resolver

import (
	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/did/w3cdid"
)

// resolveKey expands a did:key identifier into its single-key document.
func resolveKey(u w3cdid.URL) (*w3cdid.Document, error) {
	mc := u.Id()
	if mc == "" {
		return nil, errors.Wrap(did.ErrDIDNotFound, "empty did:key")
	}

	pk, err := cryptography.DecodeMulticodec(mc)
	if err != nil {
		return nil, errors.Wrap(err, "decoding did:key")
	}

	id := string(u)
	vm, err := cryptography.NewVerificationMethod(id+"#"+mc, id, pk)
	if err != nil {
		return nil, err
	}

	ref := w3cdid.RefTo(vm.ID)

	return &w3cdid.Document{
		Context:              []string{w3cdid.ContextV1},
		ID:                   id,
		VerificationMethod:   []cryptography.VerificationMethod{vm},
		Authentication:       []w3cdid.Relationship{ref},
		AssertionMethod:      []w3cdid.Relationship{ref},
		CapabilityInvocation: []w3cdid.Relationship{ref},
		CapabilityDelegation: []w3cdid.Relationship{ref},
	}, nil
}
