package did

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/did"
	"gopkg.in/square/go-jose.v2"
	"gopkg.in/yaml.v3"
)

const (
	KeyTypeEd25519   = "ed25519"
	KeyTypeSecp256k1 = "secp256k1"
	KeyTypeBls12381  = "bls12381"
	KeyTypeP256      = "p256"
)

var ErrIdentityNotFound = errors.New("identity not found")

type IdentityFileStore struct {
	Ids []IdentityFileStoreId `yaml:"ids"`
}

type IdentityFileStoreId struct {
	DID  string                 `yaml:"did"`
	Keys []IdentityFileStoreKey `yaml:"keys"`
}

type IdentityFileStoreKey struct {
	Fragment string `yaml:"fragment"`
	Type     string `yaml:"type"`
	Data     string `yaml:"data"`
}

var _ did.IdentityStore = (*FileStore)(nil)

// FileStore keeps local signers in a yaml file.
type FileStore struct {
	path string
	ids  IdentityFileStore
	idx  map[string]*did.LocalSigner

	mu sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	f := &FileStore{path: path}
	if err := f.read(); err != nil {
		return nil, err
	}

	return f, nil
}

func (fs *FileStore) read() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(fs.path), 0700); err != nil {
		return errors.Wrap(err, "creating identity dir")
	}

	f, err := os.OpenFile(fs.path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return errors.Wrap(err, "opening identity file for read")
	}
	defer f.Close()

	d, err := ioutil.ReadAll(f)
	if err != nil {
		return errors.Wrap(err, "reading identity file")
	}

	if err := yaml.Unmarshal(d, &fs.ids); err != nil {
		return errors.Wrap(err, "unmarshalling identity data")
	}

	return fs.buildIdx()
}

func (fs *FileStore) buildIdx() error {
	//assumes locked fs.mu

	fs.idx = make(map[string]*did.LocalSigner, len(fs.ids.Ids))

	for _, fid := range fs.ids.Ids {
		s := did.NewLocalSigner(fid.DID)

		for _, k := range fid.Keys {
			sk, err := decodeKey(k.Type, k.Data)
			if err != nil {
				return errors.Wrapf(err, "decoding key %s#%s", fid.DID, k.Fragment)
			}

			if _, err := s.AddKey(k.Fragment, sk); err != nil {
				return errors.Wrapf(err, "adding key %s#%s", fid.DID, k.Fragment)
			}
		}

		fs.idx[fid.DID] = s
	}

	return nil
}

// Generate creates a did:key identity of the given key type and stores it.
func (fs *FileStore) Generate(keyType string) (*did.LocalSigner, error) {
	sk, err := GenerateKey(keyType)
	if err != nil {
		return nil, err
	}

	s, err := did.NewDIDKeySigner(sk)
	if err != nil {
		return nil, err
	}

	if err := fs.Add(s); err != nil {
		return nil, err
	}

	return s, nil
}

// Add stores every key of s. Adding a DID twice is a no-op.
func (fs *FileStore) Add(s *did.LocalSigner) error {
	ctx := context.Background()

	d, _ := s.DID(ctx)
	ids, _ := s.ListKeyIDs(ctx)

	fid := IdentityFileStoreId{DID: d}
	for _, id := range ids {
		sk, _ := s.PrivateKey(id)

		t, data, err := encodeKey(sk)
		if err != nil {
			return err
		}

		fid.Keys = append(fid.Keys, IdentityFileStoreKey{Fragment: id.Fragment(), Type: t, Data: data})
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	//check if in idx
	if _, ok := fs.idx[d]; ok {
		return nil
	}

	fs.ids.Ids = append(fs.ids.Ids, fid)
	fs.idx[d] = s

	return fs.write()
}

func (fs *FileStore) write() error {
	d, err := yaml.Marshal(&fs.ids)
	if err != nil {
		return errors.Wrap(err, "marshalling identity data")
	}

	tmp := fs.path + ".tmp"
	if err := ioutil.WriteFile(tmp, d, 0600); err != nil {
		return errors.Wrap(err, "writing identity file")
	}

	return errors.Wrap(os.Rename(tmp, fs.path), "replacing identity file")
}

func (fs *FileStore) Find(id string) (*did.LocalSigner, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	s, ok := fs.idx[id]
	if !ok {
		return nil, errors.Wrapf(ErrIdentityNotFound, "%s", id)
	}

	return s, nil
}

func (fs *FileStore) List() ([]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	ids := make([]string, 0, len(fs.idx))
	for id := range fs.idx {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

// GenerateKey creates a fresh private key of keyType.
func GenerateKey(keyType string) (crypto.PrivateKey, error) {
	switch keyType {
	case KeyTypeEd25519:
		_, sk, err := ed25519.GenerateKey(rand.Reader)
		return sk, err
	case KeyTypeSecp256k1:
		return cryptography.NewEcdsaSecp256k1PrivateKey()
	case KeyTypeBls12381:
		return cryptography.NewBls12381PrivateKey(), nil
	case KeyTypeP256:
		return cryptography.NewP256PrivateKey()
	default:
		return nil, errors.Errorf("unknown key type %s", keyType)
	}
}

func encodeKey(sk crypto.PrivateKey) (string, string, error) {
	var (
		t   string
		raw []byte
		err error
	)

	switch k := sk.(type) {
	case ed25519.PrivateKey:
		t, raw = KeyTypeEd25519, []byte(k)
	case *cryptography.Secp256k1PrivateKey:
		t = KeyTypeSecp256k1
		raw, err = k.Bytes()
	case *cryptography.Bls12381PrivateKey:
		t = KeyTypeBls12381
		raw, err = k.Bytes()
	case *ecdsa.PrivateKey:
		t = KeyTypeP256
		raw, err = json.Marshal(jose.JSONWebKey{Key: k})
	default:
		return "", "", errors.Errorf("unknown did PK type %T", k)
	}
	if err != nil {
		return "", "", errors.Wrap(err, "encoding private key")
	}

	return t, base64.StdEncoding.EncodeToString(raw), nil
}

func decodeKey(t string, data string) (crypto.PrivateKey, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "decoding b64 identity data")
	}

	switch t {
	case KeyTypeEd25519:
		if len(raw) != ed25519.PrivateKeySize {
			return nil, errors.New("invalid ed25519 key length")
		}
		return ed25519.PrivateKey(raw), nil
	case KeyTypeSecp256k1:
		return cryptography.NewSecp256k1PrivateKeyFromBytes(raw)
	case KeyTypeBls12381:
		return cryptography.NewBls12381PrivateKeyFromBytes(raw)
	case KeyTypeP256:
		jwk := jose.JSONWebKey{}
		if err := jwk.UnmarshalJSON(raw); err != nil {
			return nil, errors.Wrap(err, "decoding p256 jwk")
		}
		sk, ok := jwk.Key.(*ecdsa.PrivateKey)
		if !ok {
			return nil, errors.Errorf("p256 entry holds %T", jwk.Key)
		}
		return sk, nil
	default:
		return nil, errors.Errorf("unknown key type %s", t)
	}
}
