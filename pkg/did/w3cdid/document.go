package w3cdid

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/cryptography"
)

const ContextV1 = "https://www.w3.org/ns/did/v1"

type Document struct {
	Context              []string                          `json:"@context"`
	ID                   string                            `json:"id"`
	AlsoKnownAs          []string                          `json:"alsoKnownAs,omitempty"`
	Controller           []string                          `json:"controller,omitempty"`
	VerificationMethod   []cryptography.VerificationMethod `json:"verificationMethod,omitempty"`
	Authentication       []Relationship                    `json:"authentication,omitempty"`
	AssertionMethod      []Relationship                    `json:"assertionMethod,omitempty"`
	KeyAgreement         []Relationship                    `json:"keyAgreement,omitempty"`
	CapabilityInvocation []Relationship                    `json:"capabilityInvocation,omitempty"`
	CapabilityDelegation []Relationship                    `json:"capabilityDelegation,omitempty"`
	Service              []Service                         `json:"service,omitempty"`
}

type Service struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	ServiceEndpoint string `json:"serviceEndpoint"`
}

// Relationship is an entry of a verification relationship. It either
// references a verification method by id or embeds one.
type Relationship struct {
	Ref      string
	Embedded *cryptography.VerificationMethod
}

// RefTo builds a by-reference relationship entry.
func RefTo(id string) Relationship {
	return Relationship{Ref: id}
}

// Embed builds an embedded relationship entry.
func Embed(vm cryptography.VerificationMethod) Relationship {
	return Relationship{Embedded: &vm}
}

// ID returns the id of the referenced or embedded method.
func (r Relationship) ID() string {
	if r.Embedded != nil {
		return r.Embedded.ID
	}

	return r.Ref
}

func (r Relationship) MarshalJSON() ([]byte, error) {
	if r.Embedded != nil {
		return json.Marshal(r.Embedded)
	}

	return json.Marshal(r.Ref)
}

func (r *Relationship) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return errors.New("empty verification relationship")
	}

	switch b[0] {
	case '"':
		r.Embedded = nil
		return json.Unmarshal(b, &r.Ref)
	case '{':
		vm := &cryptography.VerificationMethod{}
		if err := json.Unmarshal(b, vm); err != nil {
			return errors.Wrap(err, "decoding embedded verification method")
		}
		r.Ref = ""
		r.Embedded = vm
		return nil
	default:
		return errors.Errorf("verification relationship must be a string or object")
	}
}

// AbsoluteID expands a relative method id ("#key-1") against the document id.
func (d *Document) AbsoluteID(id string) string {
	if strings.HasPrefix(id, "#") {
		return d.ID + id
	}

	return id
}

// FindVerificationMethod looks id up in verificationMethod and in methods
// embedded under authentication.
func (d *Document) FindVerificationMethod(id string) (*cryptography.VerificationMethod, bool) {
	id = d.AbsoluteID(id)

	for i := range d.VerificationMethod {
		if d.AbsoluteID(d.VerificationMethod[i].ID) == id {
			vm := d.VerificationMethod[i]
			vm.ID = id
			return &vm, true
		}
	}

	for _, rel := range d.Authentication {
		if rel.Embedded != nil && d.AbsoluteID(rel.Embedded.ID) == id {
			vm := *rel.Embedded
			vm.ID = id
			return &vm, true
		}
	}

	return nil, false
}

// IsAuthentication reports whether id is listed under authentication,
// either as a bare reference or an embedded method.
func (d *Document) IsAuthentication(id string) bool {
	return hasRelationship(d, d.Authentication, id)
}

// IsCapabilityInvocation reports whether id may invoke capabilities.
func (d *Document) IsCapabilityInvocation(id string) bool {
	return hasRelationship(d, d.CapabilityInvocation, id)
}

func hasRelationship(d *Document, rels []Relationship, id string) bool {
	id = d.AbsoluteID(id)

	for _, rel := range rels {
		if d.AbsoluteID(rel.ID()) == id {
			return true
		}
	}

	return false
}

// IsControlledBy reports whether the method's controller is did.
func IsControlledBy(vm *cryptography.VerificationMethod, did string) bool {
	return vm != nil && vm.Controller == did
}
