package token

import (
	"github.com/fpluis/subscription-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Token holds all token info.
	Token struct {
		// Ticker symbol
		Symbol string
		// Amount of decimals
		Decimals int
		// Storage key for circulation value
		CirculationKey string
	}

	// Account structure stores metadata of each token account.
	Account struct {
		// Active balance
		Balance int
		// Until valid for lock accounts
		Until int
		// Parent field used in lock accounts, used to return assets back if
		// account wasn't burnt.
		Parent []byte
	}
)

const (
	symbol      = "SUBS"
	decimals    = 12
	circulation = "TotalSupply"
	accPrefix   = 'a'

	escrowContractKey = 'e'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		addrEscrow interop.Hash160
	})

	if len(args.addrEscrow) != interop.Hash160Len {
		panic("incorrect length of escrow contract script hash")
	}

	storage.Put(ctx, escrowContractKey, args.addrEscrow)

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data interface{}) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Symbol is a NEP-17 standard method that returns token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of token
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns total amount of
// minted tokens.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns token balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Accounts returns an iterator over the addresses of all accounts present
// in the balance sheet, lock accounts included.
func Accounts() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{accPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// DetailsOf returns the full account structure of the specified account,
// including the lock metadata. The subscription contract inspects it before
// trusting an escrow account.
func DetailsOf(account interop.Hash160) Account {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers tokens from one
// account to another. It can be invoked only by the account owner.
//
// It produces Transfer and TransferX notifications. TransferX notification
// will have empty details field.
func Transfer(from, to interop.Hash160, amount int, data interface{}) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount, false, nil)
}

// TransferX is a method for token transfers between arbitrary accounts. It
// can be invoked by the committee or by the subscription contract registered
// at deploy time; the latter is how escrowed funds are collected and
// released.
//
// It produces Transfer and TransferX notifications.
func TransferX(from, to interop.Hash160, amount int, details []byte) bool {
	ctx := storage.GetContext()

	if !fromEscrowContract(ctx) {
		common.CheckCommitteeWitness()
	}

	return token.transfer(ctx, from, to, amount, true, details)
}

// Lock is a method that transfers assets from a user account to the lock
// account related to the user. It can be invoked only by the committee.
//
// It produces Lock, Transfer and TransferX notifications.
func Lock(txDetails []byte, from, to interop.Hash160, amount, until int) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	details := common.LockTransferDetails(txDetails)

	lockAccount := Account{
		Balance: 0,
		Until:   until,
		Parent:  from,
	}

	common.SetSerialized(ctx, append([]byte{accPrefix}, to...), lockAccount)

	result := token.transfer(ctx, from, to, amount, true, details)
	if !result {
		panic("can't lock funds")
	}

	runtime.Log("created lock account")
	runtime.Notify("Lock", txDetails, from, to, amount, until)
}

// NewEpoch is a method that checks timeout on lock accounts and returns
// assets if the lock is not valid anymore. It can be invoked only by the
// committee.
//
// It produces Transfer and TransferX notifications.
func NewEpoch(epochNum int) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	it := storage.Find(ctx, []byte{accPrefix}, storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		addr := iterator.Value(it).(interop.Hash160) // it MUST BE `storage.KeysOnly`
		if len(addr) != interop.Hash160Len {
			continue
		}

		acc := getAccount(ctx, addr)
		if acc.Until == 0 {
			continue
		}

		if epochNum >= acc.Until {
			details := common.UnlockTransferDetails(epochNum)
			// return assets back to the parent
			token.transfer(ctx, addr, acc.Parent, acc.Balance, true, details)
		}
	}
}

// Mint is a method that transfers assets to a user account from an empty
// account. It can be invoked only by the committee.
//
// It produces Transfer and TransferX notifications.
func Mint(to interop.Hash160, amount int, txDetails []byte) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	details := common.MintTransferDetails(txDetails)

	ok := token.transfer(ctx, nil, to, amount, true, details)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	supply = supply + amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were minted")
}

// Burn is a method that transfers assets from a user account to an empty
// account. It can be invoked only by the committee.
//
// It produces Transfer and TransferX notifications.
func Burn(from interop.Hash160, amount int, txDetails []byte) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	details := common.BurnTransferDetails(txDetails)

	ok := token.transfer(ctx, from, nil, amount, true, details)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}

	supply = supply - amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were burned")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	acc := getAccount(ctx, holder)

	return acc.Balance
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, innerCall bool, details []byte) bool {
	if amount < 0 {
		panic("negative amount")
	}

	amountFrom, ok := t.canTransfer(ctx, from, to, amount, innerCall)
	if !ok {
		return false
	}

	if len(from) == interop.Hash160Len {
		var fromKey = append([]byte{accPrefix}, from...)

		if amountFrom.Balance == amount {
			storage.Delete(ctx, fromKey)
		} else {
			amountFrom.Balance -= amount
			common.SetSerialized(ctx, fromKey, amountFrom)
		}
	}

	if len(to) == interop.Hash160Len {
		var toKey = append([]byte{accPrefix}, to...)

		amountTo := getAccount(ctx, to)
		amountTo.Balance += amount
		common.SetSerialized(ctx, toKey, amountTo)
	}

	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, details)

	return true
}

// canTransfer returns the amount it can transfer.
func (t Token) canTransfer(ctx storage.Context, from, to interop.Hash160, amount int, innerCall bool) (Account, bool) {
	var (
		emptyAcc = Account{}
	)

	if !innerCall {
		if len(to) != interop.Hash160Len || !isUsableAddress(from) {
			runtime.Log("bad script hashes")
			return emptyAcc, false
		}
	} else if len(from) == 0 {
		return emptyAcc, true
	}

	amountFrom := getAccount(ctx, from)
	if amountFrom.Balance < amount {
		runtime.Log("not enough assets")
		return emptyAcc, false
	}

	// return amountFrom value back to transfer, reduces extra Get
	return amountFrom, true
}

// isUsableAddress checks if the sender is either a correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}

// fromEscrowContract checks whether the invocation comes from the
// subscription contract registered at deploy time.
func fromEscrowContract(ctx storage.Context) bool {
	registered := storage.Get(ctx, escrowContractKey)
	if registered == nil {
		return false
	}

	caller := runtime.GetCallingScriptHash()
	return caller.Equals(registered.(interop.Hash160))
}

func getAccount(ctx storage.Context, key interop.Hash160) Account {
	data := storage.Get(ctx, append([]byte{accPrefix}, key...))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Account)
	}

	return Account{}
}
