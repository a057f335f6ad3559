package did

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/did/w3cdid"
)

var ErrInvalidKeyID = errors.New("key id must be of the form did#fragment")

// KeyID identifies a verification method: DID + "#" + fragment.
type KeyID string

func NewKeyID(did, fragment string) KeyID {
	return KeyID(did + "#" + fragment)
}

func ParseKeyID(s string) (KeyID, error) {
	k := KeyID(s)
	if err := k.Validate(); err != nil {
		return "", err
	}

	return k, nil
}

func (k KeyID) Validate() error {
	d, frag, ok := strings.Cut(string(k), "#")
	if !ok || frag == "" {
		return ErrInvalidKeyID
	}

	parts := strings.SplitN(d, ":", 3)
	if len(parts) != 3 || parts[0] != "did" || parts[1] == "" || parts[2] == "" {
		return ErrInvalidKeyID
	}

	return nil
}

// DID returns the DID part of the key id.
func (k KeyID) DID() string {
	return w3cdid.URL(k).DID()
}

// Fragment returns the verification method fragment, without "#".
func (k KeyID) Fragment() string {
	_, frag, _ := strings.Cut(string(k), "#")
	return frag
}

func (k KeyID) String() string {
	return string(k)
}
