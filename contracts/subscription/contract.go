package subscription

import (
	"github.com/fpluis/subscription-contract/common"
	"github.com/fpluis/subscription-contract/contracts/subscription/subconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Owner is one co-owner entry of a subscription record. Share is an
	// integer percentage of the accrued total the owner may withdraw over
	// the record's lifetime, Withdrawn is how much of it they already took.
	Owner struct {
		Account   interop.Hash160
		Share     int
		Withdrawn int
	}

	// Subscription is the record persisted per resource under its derived
	// identifier.
	Subscription struct {
		// Token contract the escrow accepts payments in, fixed at creation.
		Token interop.Hash160
		// Co-owners with their shares and withdrawal bookkeeping.
		Owners []Owner
		// Cumulative amount ever paid into escrow.
		TotalPaid int
		// Price of one period extension.
		Price int
		// Duration of one paid period in seconds.
		PeriodDuration int
		// Block timestamp (ms) the subscription stays valid through.
		PaidUntil int
	}

	// Identity is the result of subscription identifier derivation.
	Identity struct {
		ID   interop.Hash256
		Bump int
	}

	// tokenAccount is a (sufficient) copy of
	// github.com/fpluis/subscription-contract/contracts/token.Account to
	// prevent cross-contract imports that may fail due to internal `_deploy`
	// calls.
	tokenAccount struct {
		Balance int
		Until   int
		Parent  interop.Hash160
	}
)

const (
	// countKey is the only bookkeeping key of the contract. Identifier
	// derivation bumps past digests starting with this byte, so record keys
	// never collide with it.
	countKey = 'c'

	// totalPaid is kept within unsigned 64-bit range.
	maxTotalPaid = 1<<63 - 1
)

// nolint:unused
func _deploy(data interface{}, isUpdate bool) {
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("subscription contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data interface{}) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("subscription contract updated")
}

// Create registers a subscription record for the given resource. The id
// supplied by the creator must match the derivation for the resource, the
// owner and share lists must be index-aligned with at most
// [subconst.MaxOwners] distinct entries summing up to 100 percent at most.
// The price must be positive and the period duration non-negative; a zero
// period produces a record that lapses immediately. The record is written
// once; a second creation attempt for the same resource fails.
//
// It produces SubscriptionCreated notification.
func Create(creator interop.Hash160, id interop.Hash256, owners []interop.Hash160, shares []int, token interop.Hash160, resource interop.Hash256, price, periodDuration int) {
	common.CheckOwnerWitness(creator)

	derived, _ := deriveID(resource)
	if !common.BytesEqual(id, derived) {
		panic(subconst.ErrInvalidSubscriptionAccount)
	}

	if price <= 0 {
		panic(subconst.ErrInvalidPrice)
	}

	if periodDuration < 0 {
		panic(subconst.ErrInvalidPeriod)
	}

	if len(owners) > subconst.MaxOwners {
		panic(subconst.ErrMaxOwnersExceeded)
	}

	if len(owners) != len(shares) {
		panic(subconst.ErrOwnersSharesMismatch)
	}

	sum := 0
	for i := 0; i < len(owners); i++ {
		if shares[i] <= 0 || shares[i] > 100 {
			panic(subconst.ErrInvalidShares)
		}
		sum += shares[i]

		for j := 0; j < i; j++ {
			if owners[j].Equals(owners[i]) {
				panic(subconst.ErrDuplicateOwner)
			}
		}
	}
	if sum > 100 {
		panic(subconst.ErrInvalidShares)
	}

	ctx := storage.GetContext()
	if storage.Get(ctx, derived) != nil {
		panic(subconst.ErrAlreadyExists)
	}

	list := []Owner{}
	for i := 0; i < len(owners); i++ {
		list = append(list, Owner{
			Account:   owners[i],
			Share:     shares[i],
			Withdrawn: 0,
		})
	}

	sub := Subscription{
		Token:          token,
		Owners:         list,
		TotalPaid:      0,
		Price:          price,
		PeriodDuration: periodDuration,
		PaidUntil:      0,
	}

	common.SetSerialized(ctx, derived, sub)
	storage.Put(ctx, countKey, count(ctx)+1)

	runtime.Notify("SubscriptionCreated", derived, resource, creator)
	runtime.Log("created new subscription")
}

// Pay escrows one period price from the payer and extends the subscription
// bound to the resource. The token reference must match the one the record
// was created with and the escrow account must be the derived one, carrying
// neither lock timeout nor parent in the token contract. A lapsed
// subscription restarts from the current block time, an active one is
// extended from its expiry.
//
// It produces Payment notification.
func Pay(payer interop.Hash160, resource interop.Hash256, token interop.Hash160, escrow interop.Hash160) {
	ctx := storage.GetContext()

	id, _ := deriveID(resource)
	sub := getSubscription(ctx, id)

	if !token.Equals(sub.Token) {
		panic(subconst.ErrIncorrectToken)
	}

	if !escrow.Equals(escrowAccount(id)) {
		panic(subconst.ErrEscrowAccountMismatch)
	}
	checkEscrowClean(sub.Token, escrow)

	common.CheckOwnerWitness(payer)

	balance := contract.Call(sub.Token, "balanceOf", contract.ReadOnly, payer).(int)
	if balance < sub.Price {
		panic(subconst.ErrBalanceTooLow)
	}

	if sub.TotalPaid > maxTotalPaid-sub.Price {
		panic(subconst.ErrNumericOverflow)
	}

	details := common.PaymentTransferDetails(id)
	ok := contract.Call(sub.Token, "transferX", contract.All, payer, escrow, sub.Price, details).(bool)
	if !ok {
		panic(subconst.ErrTokenTransferFailed)
	}

	sub.TotalPaid += sub.Price

	now := runtime.GetTime()
	period := sub.PeriodDuration * 1000
	if sub.PaidUntil < now {
		sub.PaidUntil = now + period
	} else {
		sub.PaidUntil += period
	}

	common.SetSerialized(ctx, id, sub)

	runtime.Notify("Payment", id, payer, sub.Price, sub.PaidUntil)
	runtime.Log("subscription paid")
}

// Withdraw releases up to the withdrawer's unclaimed entitlement from the
// escrow of the resource's subscription to the destination account. The
// entitlement is the withdrawer's share of everything ever paid, rounded
// down, minus what they have already withdrawn.
//
// It produces Withdrawal notification.
func Withdraw(withdrawer, to interop.Hash160, resource interop.Hash256, token interop.Hash160, amount int) {
	ctx := storage.GetContext()

	id, _ := deriveID(resource)
	sub := getSubscription(ctx, id)

	if !token.Equals(sub.Token) {
		panic(subconst.ErrIncorrectToken)
	}

	common.CheckOwnerWitness(withdrawer)

	if amount <= 0 {
		panic(subconst.ErrNonPositiveAmount)
	}

	index := ownerIndex(sub.Owners, withdrawer)
	owner := sub.Owners[index]

	entitlement := sub.TotalPaid * owner.Share / 100
	available := entitlement - owner.Withdrawn
	if amount > available {
		panic(subconst.ErrWithdrawalOverMax)
	}

	details := common.WithdrawalTransferDetails(id)
	ok := contract.Call(sub.Token, "transferX", contract.All, escrowAccount(id), to, amount, details).(bool)
	if !ok {
		panic(subconst.ErrTokenTransferFailed)
	}

	sub.Owners[index].Withdrawn = owner.Withdrawn + amount
	common.SetSerialized(ctx, id, sub)

	runtime.Notify("Withdrawal", id, withdrawer, to, amount)
	runtime.Log("escrowed funds withdrawn")
}

// Get returns the subscription record bound to the resource.
func Get(resource interop.Hash256) Subscription {
	ctx := storage.GetReadOnlyContext()
	id, _ := deriveID(resource)
	return getSubscription(ctx, id)
}

// DeriveID returns the identifier the resource's subscription record is
// stored under together with the disambiguation bump used to produce it.
// The derivation is deterministic, identical inputs always yield an
// identical identifier.
func DeriveID(resource interop.Hash256) Identity {
	id, bump := deriveID(resource)
	return Identity{ID: id, Bump: bump}
}

// EscrowOf returns the escrow account holding accrued payments of the
// resource's subscription. No key controls this account, funds leave it
// only through Withdraw.
func EscrowOf(resource interop.Hash256) interop.Hash160 {
	id, _ := deriveID(resource)
	return escrowAccount(id)
}

// Available returns the amount the owner may withdraw from the resource's
// subscription escrow right now.
func Available(resource interop.Hash256, owner interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	id, _ := deriveID(resource)
	sub := getSubscription(ctx, id)

	index := ownerIndex(sub.Owners, owner)
	o := sub.Owners[index]

	return sub.TotalPaid*o.Share/100 - o.Withdrawn
}

// Count returns the number of registered subscription records.
func Count() int {
	return count(storage.GetReadOnlyContext())
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// deriveID computes the storage identifier of the resource's record:
// SHA-256 over the namespace tag, the executing contract hash, the resource
// and a one-byte bump. The bump is the smallest one whose digest does not
// start with a reserved bookkeeping prefix.
func deriveID(resource interop.Hash256) (interop.Hash256, int) {
	program := runtime.GetExecutingScriptHash()

	seed := []byte(subconst.IDPrefix)
	seed = append(seed, program...)
	seed = append(seed, resource...)

	for bump := 0; bump < 256; bump++ {
		id := crypto.Sha256(append(seed, byte(bump)))
		if id[0] != countKey {
			return id, bump
		}
	}

	// 256 digests all starting with the same byte cannot happen.
	panic(subconst.ErrInvalidSubscriptionAccount)
}

// escrowAccount derives the account accrued payments are escrowed on from
// the subscription identifier.
func escrowAccount(id interop.Hash256) interop.Hash160 {
	data := []byte(subconst.EscrowPrefix)
	data = append(data, id...)
	return crypto.Ripemd160(crypto.Sha256(data))
}

// checkEscrowClean ensures nothing can redirect or reclaim escrowed funds:
// the escrow account must not be a lock account in the token contract.
func checkEscrowClean(token, escrow interop.Hash160) {
	acc := contract.Call(token, "detailsOf", contract.ReadOnly, escrow).(tokenAccount)
	if acc.Until != 0 {
		panic(subconst.ErrEscrowLocked)
	}
	if len(acc.Parent) != 0 {
		panic(subconst.ErrEscrowParentSet)
	}
}

func ownerIndex(owners []Owner, account interop.Hash160) int {
	for i := 0; i < len(owners); i++ {
		if owners[i].Account.Equals(account) {
			return i
		}
	}

	panic(subconst.ErrNotAnOwner)
}

func getSubscription(ctx storage.Context, id interop.Hash256) Subscription {
	data := storage.Get(ctx, id)
	if data == nil {
		panic(subconst.ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(Subscription)
}

func count(ctx storage.Context) int {
	data := storage.Get(ctx, countKey)
	if data == nil {
		return 0
	}

	return data.(int)
}
