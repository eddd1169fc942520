package tests

import (
	"path"
	"testing"

	"github.com/fpluis/subscription-contract/common"
	tokenrpc "github.com/fpluis/subscription-contract/rpc/token"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const tokenPath = "../contracts/token"

func deployTokenContract(t *testing.T, e *neotest.Executor, addrSubscription util.Uint160) util.Uint160 {
	args := make([]interface{}, 1)
	args[0] = addrSubscription

	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, c, args)
	return c.Hash
}

func newTokenInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)

	var addrSubscription util.Uint160
	copy(addrSubscription[:], randomBytes(util.Uint160Size))

	h := deployTokenContract(t, e, addrSubscription)
	return e.CommitteeInvoker(h)
}

func TestTokenInfo(t *testing.T) {
	c := newTokenInvoker(t)

	c.Invoke(t, "SUBS", "symbol")
	c.Invoke(t, 12, "decimals")
	c.Invoke(t, 0, "totalSupply")
	c.Invoke(t, common.Version, "version")
}

func TestTokenMintBurn(t *testing.T) {
	c := newTokenInvoker(t)

	acc := c.NewAccount(t)
	addr := acc.ScriptHash()
	details := randomBytes(5)

	c.WithSigners(acc).InvokeFail(t, common.ErrCommitteeWitnessFailed, "mint", addr, int64(100), details)

	c.Invoke(t, stackitem.Null{}, "mint", addr, int64(100), details)
	c.Invoke(t, 100, "balanceOf", addr)
	c.Invoke(t, 100, "totalSupply")

	c.WithSigners(acc).InvokeFail(t, common.ErrCommitteeWitnessFailed, "burn", addr, int64(30), details)

	c.Invoke(t, stackitem.Null{}, "burn", addr, int64(30), details)
	c.Invoke(t, 70, "balanceOf", addr)
	c.Invoke(t, 70, "totalSupply")
}

func TestTokenTransfer(t *testing.T) {
	c := newTokenInvoker(t)

	from := c.NewAccount(t)
	to := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), int64(100), randomBytes(5))

	cFrom := c.WithSigners(from)
	cFrom.Invoke(t, true, "transfer", from.ScriptHash(), to.ScriptHash(), int64(40), nil)
	c.Invoke(t, 60, "balanceOf", from.ScriptHash())
	c.Invoke(t, 40, "balanceOf", to.ScriptHash())

	t.Run("missing witness", func(t *testing.T) {
		cTo := c.WithSigners(to)
		cTo.Invoke(t, false, "transfer", from.ScriptHash(), to.ScriptHash(), int64(10), nil)
	})

	t.Run("not enough assets", func(t *testing.T) {
		cFrom.Invoke(t, false, "transfer", from.ScriptHash(), to.ScriptHash(), int64(1000), nil)
	})

	t.Run("negative amount", func(t *testing.T) {
		cFrom.InvokeFail(t, "negative amount", "transfer", from.ScriptHash(), to.ScriptHash(), int64(-1), nil)
	})
}

func TestTokenTransferX(t *testing.T) {
	c := newTokenInvoker(t)

	acc1 := c.NewAccount(t)
	acc2 := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "mint", acc1.ScriptHash(), int64(100), randomBytes(5))

	c.WithSigners(acc1).InvokeFail(t, common.ErrCommitteeWitnessFailed, "transferX",
		acc1.ScriptHash(), acc2.ScriptHash(), int64(50), nil)

	c.Invoke(t, true, "transferX", acc1.ScriptHash(), acc2.ScriptHash(), int64(50), nil)
	c.Invoke(t, 50, "balanceOf", acc1.ScriptHash())
	c.Invoke(t, 50, "balanceOf", acc2.ScriptHash())
}

func TestTokenLock(t *testing.T) {
	c := newTokenInvoker(t)

	acc := c.NewAccount(t)
	addr := acc.ScriptHash()
	details := randomBytes(5)

	var lockAcc util.Uint160
	copy(lockAcc[:], randomBytes(util.Uint160Size))

	c.Invoke(t, stackitem.Null{}, "mint", addr, int64(100), details)

	c.WithSigners(acc).InvokeFail(t, common.ErrCommitteeWitnessFailed, "lock",
		details, addr, lockAcc, int64(30), int64(5))

	c.Invoke(t, stackitem.Null{}, "lock", details, addr, lockAcc, int64(30), int64(5))
	c.Invoke(t, 70, "balanceOf", addr)
	c.Invoke(t, 30, "balanceOf", lockAcc)

	s, err := c.TestInvoke(t, "detailsOf", lockAcc)
	require.NoError(t, err)

	lockDetails := new(tokenrpc.TokenAccount)
	require.NoError(t, lockDetails.FromStackItem(s.Pop().Item()))
	require.EqualValues(t, 30, lockDetails.Balance.Int64())
	require.EqualValues(t, 5, lockDetails.Until.Int64())
	require.Equal(t, addr.BytesBE(), lockDetails.Parent)

	// lock is still valid
	c.Invoke(t, stackitem.Null{}, "newEpoch", int64(4))
	c.Invoke(t, 30, "balanceOf", lockAcc)

	// lock expired, funds return to the parent
	c.Invoke(t, stackitem.Null{}, "newEpoch", int64(5))
	c.Invoke(t, 0, "balanceOf", lockAcc)
	c.Invoke(t, 100, "balanceOf", addr)
}

func TestTokenAccounts(t *testing.T) {
	c := newTokenInvoker(t)

	acc1 := c.NewAccount(t)
	acc2 := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "mint", acc1.ScriptHash(), int64(10), randomBytes(5))
	c.Invoke(t, stackitem.Null{}, "mint", acc2.ScriptHash(), int64(20), randomBytes(5))

	s, err := c.TestInvoke(t, "accounts")
	require.NoError(t, err)

	iter := s.Pop().Value().(*storage.Iterator)
	items := iteratorToArray(iter)
	require.Equal(t, 2, len(items))

	addrs := make([][]byte, 0, len(items))
	for _, item := range items {
		addr, err := item.TryBytes()
		require.NoError(t, err)
		addrs = append(addrs, addr)
	}
	require.Contains(t, addrs, acc1.ScriptHash().BytesBE())
	require.Contains(t, addrs, acc2.ScriptHash().BytesBE())
}
