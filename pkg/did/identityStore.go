package did

// IdentityStore gives access to locally held signers by DID.
type IdentityStore interface {
	Find(did string) (*LocalSigner, error)
	List() ([]string, error)
}
