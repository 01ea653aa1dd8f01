package hasher

import (
	"fmt"

	"github.com/bbs-caleb/absplit/types"
)

// Default returns the contract used when none is named: sha256/8.
func Default() types.Hasher {
	return NewSHA256()
}

// ForName resolves a contract name to its hasher.
//
// Used by YAML experiment configuration, where contracts are referenced by
// name. An empty name resolves to the default contract.
//
// Parameters:
//   - name: Contract identifier ("sha256/8", "md5/4", "xxh3/8") or ""
//
// Returns:
//   - types.Hasher: The named contract
//   - error: types.ErrUnknownHasher when the name is not registered
func ForName(name string) (types.Hasher, error) {
	switch name {
	case "", ContractSHA256:
		return NewSHA256(), nil
	case ContractMD5:
		return NewMD5(), nil
	case ContractXXH3:
		return NewXXH3(), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownHasher, name)
	}
}
