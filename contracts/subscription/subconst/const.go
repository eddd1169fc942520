package subconst

const (
	// MaxOwners is the hard capacity limit for co-owners of a single
	// subscription record.
	MaxOwners = 5

	// IDPrefix is the namespace tag mixed into subscription identifier
	// derivation.
	IDPrefix = "sub"

	// EscrowPrefix is the namespace tag mixed into escrow account derivation.
	EscrowPrefix = "sube"

	// ErrNotFound is returned if the subscription record is missing.
	ErrNotFound = "subscription does not exist"

	// ErrAlreadyExists is returned on an attempt to create a subscription
	// record that has been created before.
	ErrAlreadyExists = "subscription already exists"

	// ErrInvalidSubscriptionAccount is returned when the record identifier
	// supplied by the caller does not match the derived one.
	ErrInvalidSubscriptionAccount = "invalid subscription account"

	// ErrMaxOwnersExceeded is returned when the owner list is longer than
	// MaxOwners.
	ErrMaxOwnersExceeded = "too many owners"

	// ErrOwnersSharesMismatch is returned when the owner address list and the
	// share list have different lengths.
	ErrOwnersSharesMismatch = "owner addresses and shares length mismatch"

	// ErrInvalidShares is returned when a share is outside of [1, 100] or the
	// shares sum up to more than 100 percent.
	ErrInvalidShares = "invalid owner shares"

	// ErrDuplicateOwner is returned when the same address appears in the
	// owner list twice.
	ErrDuplicateOwner = "duplicate owner address"

	// ErrInvalidPrice is returned when the period price of a new subscription
	// is zero or negative.
	ErrInvalidPrice = "non-positive subscription price"

	// ErrInvalidPeriod is returned when the period duration of a new
	// subscription is negative.
	ErrInvalidPeriod = "negative period duration"

	// ErrIncorrectToken is returned when the token reference supplied by the
	// caller differs from the one the subscription was created with.
	ErrIncorrectToken = "incorrect token, must match subscription"

	// ErrEscrowAccountMismatch is returned when the escrow account supplied
	// by the caller is not the one derived from the subscription identifier.
	ErrEscrowAccountMismatch = "escrow account is not owned by the subscription"

	// ErrEscrowLocked is returned when the escrow account carries a lock
	// timeout in the token contract.
	ErrEscrowLocked = "escrow account must not be locked"

	// ErrEscrowParentSet is returned when the escrow account carries a parent
	// account in the token contract.
	ErrEscrowParentSet = "escrow account must not have a parent"

	// ErrBalanceTooLow is returned when the payer balance cannot cover one
	// period price.
	ErrBalanceTooLow = "balance too low to pay subscription"

	// ErrTokenTransferFailed is returned when the token contract refuses a
	// transfer; the whole invocation is reverted.
	ErrTokenTransferFailed = "token transfer failed"

	// ErrNumericOverflow is returned when accrual would overflow the paid
	// counter.
	ErrNumericOverflow = "numeric overflow"

	// ErrNotAnOwner is returned when the withdrawing account is not listed as
	// a co-owner of the subscription.
	ErrNotAnOwner = "withdrawer is not an owner"

	// ErrWithdrawalOverMax is returned when the requested withdrawal exceeds
	// the amount that belongs to the co-owner according to their share.
	ErrWithdrawalOverMax = "withdrawal over max allowed"

	// ErrNonPositiveAmount is returned on a withdrawal request of zero or
	// negative amount.
	ErrNonPositiveAmount = "non-positive withdrawal amount"
)
