package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Identity is the 20 bytes account reference of a participant, the admin or
// the treasury. The zero value means "no identity".
type Identity = common.Address

var ZeroIdentity = Identity{}

func ParseIdentity(str string) (Identity, error) {
	if !common.IsHexAddress(str) {
		return ZeroIdentity, fmt.Errorf("invalid identity %q", str)
	}
	return common.HexToAddress(str), nil
}

func IsEmptyIdentity(id Identity) bool {
	return id == ZeroIdentity
}

func HexToIdentity(str string) Identity {
	return common.HexToAddress(str)
}
