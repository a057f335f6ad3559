package w3cdid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/didpay/pkg/cryptography"
)

const testDoc = `{
	"@context": ["https://www.w3.org/ns/did/v1"],
	"id": "did:example:1234",
	"verificationMethod": [
		{"id": "#key-1", "type": "Ed25519VerificationKey2018", "controller": "did:example:1234", "publicKeyMultibase": "z6Mk"},
		{"id": "did:example:1234#key-2", "type": "Ed25519VerificationKey2018", "controller": "did:example:1234", "publicKeyMultibase": "z6Mk"}
	],
	"authentication": [
		"#key-1",
		{"id": "did:example:1234#key-3", "type": "Ed25519VerificationKey2018", "controller": "did:example:1234", "publicKeyMultibase": "z6Mk"}
	]
}`

func TestDocumentRelationships(t *testing.T) {
	doc := &Document{}
	require.NoError(t, json.Unmarshal([]byte(testDoc), doc))

	require.Len(t, doc.Authentication, 2)
	assert.Equal(t, "#key-1", doc.Authentication[0].Ref)
	assert.NotNil(t, doc.Authentication[1].Embedded)

	tests := map[string]struct {
		found bool
		auth  bool
	}{
		"did:example:1234#key-1": {found: true, auth: true},
		"#key-1":                 {found: true, auth: true},
		"did:example:1234#key-2": {found: true, auth: false},
		"did:example:1234#key-3": {found: true, auth: true},
		"did:example:1234#key-4": {found: false, auth: false},
	}

	for id, test := range tests {
		t.Run(id, func(t *testing.T) {
			vm, ok := doc.FindVerificationMethod(id)
			assert.Equal(t, test.found, ok)
			if ok {
				assert.Equal(t, doc.AbsoluteID(id), vm.ID)
			}
			assert.Equal(t, test.auth, doc.IsAuthentication(id))
		})
	}
}

func TestRelationshipRoundTrip(t *testing.T) {
	doc := &Document{
		Context: []string{ContextV1},
		ID:      "did:example:1234",
		Authentication: []Relationship{
			RefTo("did:example:1234#key-1"),
			Embed(cryptography.VerificationMethod{ID: "did:example:1234#key-2", Type: cryptography.Ed25519VerificationKey2018}),
		},
	}

	b, err := json.Marshal(doc)
	require.NoError(t, err)

	doc2 := &Document{}
	require.NoError(t, json.Unmarshal(b, doc2))

	assert.Equal(t, doc, doc2)
}

func TestRelationshipRejectsNumbers(t *testing.T) {
	r := &Relationship{}
	assert.Error(t, json.Unmarshal([]byte(`12`), r))
}
