package subscription

import (
	"github.com/fpluis/subscription-contract/contracts/subscription/subconst"
)

const (
	// MaxOwners is the maximum number of co-owners of one subscription.
	MaxOwners = subconst.MaxOwners

	// NotFoundError is returned if subscription is missing.
	NotFoundError = subconst.ErrNotFound

	// AlreadyExistsError is returned on repeated creation for the same resource.
	AlreadyExistsError = subconst.ErrAlreadyExists

	// BalanceTooLowError is returned if the payer can't cover one period price.
	BalanceTooLowError = subconst.ErrBalanceTooLow

	// WithdrawalOverMaxError is returned on withdrawal above the unclaimed entitlement.
	WithdrawalOverMaxError = subconst.ErrWithdrawalOverMax
)
