package identity

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcec/v2"
	log "github.com/sirupsen/logrus"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
)

const keysFilename = "identity.json"

var (
	// ErrInvalidPrivateKey is returned when a stored private key is invalid.
	ErrInvalidPrivateKey = errors.New("invalid private key")
)

type keys struct {
	SignatureKey  string `json:"signatureKey"`
	EncryptionKey string `json:"encryptionKey"`
}

type identity struct {
	nodeAddress   domain.NodeAddress
	signatureKey  *btcec.PrivateKey
	encryptionKey *btcec.PrivateKey
}

// NewIdentity returns the network identity of the local node. The key pairs
// are loaded from the given directory, or generated and stored there on first
// use. With an empty directory the keys are ephemeral.
func NewIdentity(
	datadir string, nodeAddress domain.NodeAddress,
) (ports.NetworkIdentity, error) {
	if nodeAddress.IsZero() {
		return nil, domain.ErrOfferMissingNodeAddress
	}

	if len(datadir) <= 0 {
		k, err := newKeys()
		if err != nil {
			return nil, err
		}
		return fromKeys(nodeAddress, k)
	}

	path := filepath.Join(datadir, keysFilename)
	k, err := readKeys(path)
	if err != nil {
		return nil, err
	}
	if k == nil {
		if k, err = newKeys(); err != nil {
			return nil, err
		}
		if err := writeKeys(path, k); err != nil {
			return nil, err
		}
		log.Infof("generated new node identity at %s", path)
	}
	return fromKeys(nodeAddress, k)
}

func (i *identity) NodeAddress() domain.NodeAddress {
	return i.nodeAddress
}

func (i *identity) PubKeyRing() domain.PubKeyRing {
	return domain.PubKeyRing{
		SignaturePubKey:  i.signatureKey.PubKey().SerializeCompressed(),
		EncryptionPubKey: i.encryptionKey.PubKey().SerializeCompressed(),
	}
}

func newKeys() (*keys, error) {
	signatureKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate signature key: %w", err)
	}
	encryptionKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate encryption key: %w", err)
	}
	return &keys{
		SignatureKey:  hex.EncodeToString(signatureKey.Serialize()),
		EncryptionKey: hex.EncodeToString(encryptionKey.Serialize()),
	}, nil
}

func fromKeys(nodeAddress domain.NodeAddress, k *keys) (*identity, error) {
	signatureKey, err := parsePrivateKey(k.SignatureKey)
	if err != nil {
		return nil, err
	}
	encryptionKey, err := parsePrivateKey(k.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return &identity{nodeAddress, signatureKey, encryptionKey}, nil
}

func parsePrivateKey(keyHex string) (*btcec.PrivateKey, error) {
	buf, err := hex.DecodeString(keyHex)
	if err != nil || len(buf) != btcec.PrivKeyBytesLen {
		return nil, ErrInvalidPrivateKey
	}
	key, _ := btcec.PrivKeyFromBytes(buf)
	return key, nil
}

func readKeys(path string) (*keys, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	k := &keys{}
	if err := json.Unmarshal(buf, k); err != nil {
		return nil, fmt.Errorf("invalid identity file: %w", err)
	}
	return k, nil
}

func writeKeys(path string, k *keys) error {
	buf, err := json.Marshal(k)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0600)
}
