// Package subscription contains RPC wrappers for Subscription contract.
package subscription

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// SubscriptionIdentity is a contract-specific subscription.Identity type used by its methods.
type SubscriptionIdentity struct {
	ID util.Uint256
	Bump *big.Int
}

// SubscriptionOwner is a contract-specific subscription.Owner type used by its methods.
type SubscriptionOwner struct {
	Account util.Uint160
	Share *big.Int
	Withdrawn *big.Int
}

// SubscriptionSubscription is a contract-specific subscription.Subscription type used by its methods.
type SubscriptionSubscription struct {
	Token util.Uint160
	Owners []*SubscriptionOwner
	TotalPaid *big.Int
	Price *big.Int
	PeriodDuration *big.Int
	PaidUntil *big.Int
}

// SubscriptionCreatedEvent represents "SubscriptionCreated" event emitted by the contract.
type SubscriptionCreatedEvent struct {
	ID util.Uint256
	Resource util.Uint256
	Creator util.Uint160
}

// PaymentEvent represents "Payment" event emitted by the contract.
type PaymentEvent struct {
	ID util.Uint256
	Payer util.Uint160
	Amount *big.Int
	PaidUntil *big.Int
}

// WithdrawalEvent represents "Withdrawal" event emitted by the contract.
type WithdrawalEvent struct {
	ID util.Uint256
	Withdrawer util.Uint160
	To util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Available invokes `available` method of contract.
func (c *ContractReader) Available(resource util.Uint256, owner util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "available", resource, owner))
}

// Count invokes `count` method of contract.
func (c *ContractReader) Count() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "count"))
}

// DeriveID invokes `deriveID` method of contract.
func (c *ContractReader) DeriveID(resource util.Uint256) (*SubscriptionIdentity, error) {
	return itemToSubscriptionIdentity(unwrap.Item(c.invoker.Call(c.hash, "deriveID", resource)))
}

// EscrowOf invokes `escrowOf` method of contract.
func (c *ContractReader) EscrowOf(resource util.Uint256) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "escrowOf", resource))
}

// Get invokes `get` method of contract.
func (c *ContractReader) Get(resource util.Uint256) (*SubscriptionSubscription, error) {
	return itemToSubscriptionSubscription(unwrap.Item(c.invoker.Call(c.hash, "get", resource)))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Create creates a transaction invoking `create` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Create(creator util.Uint160, id util.Uint256, owners []util.Uint160, shares []*big.Int, token util.Uint160, resource util.Uint256, price *big.Int, periodDuration *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "create", creator, id, owners, shares, token, resource, price, periodDuration)
}

// CreateTransaction creates a transaction invoking `create` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateTransaction(creator util.Uint160, id util.Uint256, owners []util.Uint160, shares []*big.Int, token util.Uint160, resource util.Uint256, price *big.Int, periodDuration *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "create", creator, id, owners, shares, token, resource, price, periodDuration)
}

// CreateUnsigned creates a transaction invoking `create` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateUnsigned(creator util.Uint160, id util.Uint256, owners []util.Uint160, shares []*big.Int, token util.Uint160, resource util.Uint256, price *big.Int, periodDuration *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "create", nil, creator, id, owners, shares, token, resource, price, periodDuration)
}

// Pay creates a transaction invoking `pay` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Pay(payer util.Uint160, resource util.Uint256, token util.Uint160, escrow util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "pay", payer, resource, token, escrow)
}

// PayTransaction creates a transaction invoking `pay` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PayTransaction(payer util.Uint160, resource util.Uint256, token util.Uint160, escrow util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "pay", payer, resource, token, escrow)
}

// PayUnsigned creates a transaction invoking `pay` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PayUnsigned(payer util.Uint160, resource util.Uint256, token util.Uint160, escrow util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "pay", nil, payer, resource, token, escrow)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(withdrawer util.Uint160, to util.Uint160, resource util.Uint256, token util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", withdrawer, to, resource, token, amount)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(withdrawer util.Uint160, to util.Uint160, resource util.Uint256, token util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", withdrawer, to, resource, token, amount)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(withdrawer util.Uint160, to util.Uint160, resource util.Uint256, token util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, withdrawer, to, resource, token, amount)
}

// itemToSubscriptionIdentity converts stack item into *SubscriptionIdentity.
func itemToSubscriptionIdentity(item stackitem.Item, err error) (*SubscriptionIdentity, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SubscriptionIdentity)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SubscriptionIdentity from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SubscriptionIdentity) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Bump, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Bump: %w", err)
	}

	return nil
}

// itemToSubscriptionOwner converts stack item into *SubscriptionOwner.
func itemToSubscriptionOwner(item stackitem.Item, err error) (*SubscriptionOwner, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SubscriptionOwner)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SubscriptionOwner from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SubscriptionOwner) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	res.Share, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Share: %w", err)
	}

	index++
	res.Withdrawn, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Withdrawn: %w", err)
	}

	return nil
}

// itemToSubscriptionSubscription converts stack item into *SubscriptionSubscription.
func itemToSubscriptionSubscription(item stackitem.Item, err error) (*SubscriptionSubscription, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SubscriptionSubscription)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SubscriptionSubscription from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SubscriptionSubscription) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Token, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Token: %w", err)
	}

	index++
	res.Owners, err = func (item stackitem.Item) ([]*SubscriptionOwner, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*SubscriptionOwner, len(arr))
		for i := range res {
			res[i], err = itemToSubscriptionOwner(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owners: %w", err)
	}

	index++
	res.TotalPaid, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalPaid: %w", err)
	}

	index++
	res.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	index++
	res.PeriodDuration, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PeriodDuration: %w", err)
	}

	index++
	res.PaidUntil, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PaidUntil: %w", err)
	}

	return nil
}
