// Package identity derives account identities from secp256k1 keys and signs
// and verifies countdown requests.
package identity

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

const (
	AddressHeader   = "x-countdown-address"
	TimestampHeader = "x-countdown-timestamp"
	SignatureHeader = "x-countdown-signature"
	NonceHeader     = "x-countdown-nonce"

	domainTag = "countdown"
)

// AddressFromPubKey returns the last 20 bytes of the keccak256 hash of the
// uncompressed public key, without its prefix byte.
func AddressFromPubKey(pubkey *secp256k1.PublicKey) common.Address {
	buf := pubkey.SerializeUncompressed()
	return common.BytesToAddress(crypto.Keccak256(buf[1:])[12:])
}

// Digest is the hash signed to authenticate a call of method with the given
// serialized request. The nonce makes every call unique.
func Digest(method string, timestamp int64, nonce string, payload []byte) []byte {
	return crypto.Keccak256(
		[]byte(domainTag),
		[]byte(method),
		[]byte(strconv.FormatInt(timestamp, 10)),
		[]byte(nonce),
		payload,
	)
}

type Signer struct {
	key *secp256k1.PrivateKey
}

func NewSigner() (*Signer, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &Signer{key}, nil
}

func NewSignerFromHex(privateKey string) (*Signer, error) {
	buf, err := hex.DecodeString(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key format: %s", err)
	}
	if len(buf) != secp256k1.PrivKeyBytesLen {
		return nil, fmt.Errorf("invalid private key length")
	}
	return &Signer{secp256k1.PrivKeyFromBytes(buf)}, nil
}

func (s *Signer) Address() common.Address {
	return AddressFromPubKey(s.key.PubKey())
}

func (s *Signer) PrivateKeyHex() string {
	return hex.EncodeToString(s.key.Serialize())
}

// Sign returns the hex encoded compact recoverable signature of the digest
// of the given call.
func (s *Signer) Sign(
	method string, timestamp int64, nonce string, payload []byte,
) string {
	sig := ecdsa.SignCompact(s.key, Digest(method, timestamp, nonce, payload), false)
	return hex.EncodeToString(sig)
}

// Headers returns the metadata pairs authenticating a call.
func (s *Signer) Headers(method string, payload []byte) map[string]string {
	ts := time.Now().Unix()
	nonce := uuid.New().String()
	return map[string]string{
		AddressHeader:   s.Address().Hex(),
		TimestampHeader: strconv.FormatInt(ts, 10),
		NonceHeader:     nonce,
		SignatureHeader: s.Sign(method, ts, nonce, payload),
	}
}

// Recover returns the address of the key that produced signature over the
// digest of the given call.
func Recover(
	method string, timestamp int64, nonce string, payload []byte, signature string,
) (common.Address, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature format: %s", err)
	}
	pubkey, _, err := ecdsa.RecoverCompact(sig, Digest(method, timestamp, nonce, payload))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature: %s", err)
	}
	return AddressFromPubKey(pubkey), nil
}

// Verify checks that signature was produced by the key of address for the
// given call, and that timestamp is within maxSkew from now.
func Verify(
	address common.Address, method string, timestamp int64, nonce string,
	payload []byte, signature string, now time.Time, maxSkew time.Duration,
) error {
	skew := now.Sub(time.Unix(timestamp, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > maxSkew {
		return fmt.Errorf("timestamp out of allowed window")
	}

	signer, err := Recover(method, timestamp, nonce, payload, signature)
	if err != nil {
		return err
	}
	if signer != address {
		return fmt.Errorf("signature does not match address")
	}
	return nil
}
