package subscription

import (
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// FormatID returns the base58 string form of a subscription or resource
// identifier, the form user-facing tooling exchanges them in.
func FormatID(id util.Uint256) string {
	return base58.Encode(id[:])
}

// ParseID decodes a base58 identifier string produced by [FormatID] back
// into its binary form.
func ParseID(s string) (util.Uint256, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("invalid base58: %w", err)
	}

	u, err := util.Uint256DecodeBytesBE(b)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("invalid identifier length: %w", err)
	}

	return u, nil
}
