package keeper

// In-memory bank for keeper tests, tracking module and account balances as
// if in the real bank module's store.
import (
	"context"
	"fmt"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// InMemoryBank is an in-memory implementation of the bank surface the
// bookkeeper wraps. Transfers out of an underfunded account or module fail,
// so escrow accounting bugs surface in tests.
type InMemoryBank struct {
	accounts map[string]sdk.Coins
	modules  map[string]sdk.Coins
	minted   sdk.Coins
	mu       sync.Mutex
}

func NewInMemoryBank() *InMemoryBank {
	return &InMemoryBank{
		accounts: make(map[string]sdk.Coins),
		modules:  make(map[string]sdk.Coins),
	}
}

// FundAccount credits an account out of thin air. Test setup only.
func (b *InMemoryBank) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[addr.String()] = b.accounts[addr.String()].Add(amt...)
}

// AccountBalance returns the current balance of an account.
func (b *InMemoryBank) AccountBalance(addr sdk.AccAddress) sdk.Coins {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.accounts[addr.String()]
}

// ModuleBalance returns the current balance of a module account.
func (b *InMemoryBank) ModuleBalance(moduleName string) sdk.Coins {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.modules[moduleName]
}

// Minted returns the total supply created through MintCoins.
func (b *InMemoryBank) Minted() sdk.Coins {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.minted
}

func (b *InMemoryBank) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	remaining, err := deduct(b.modules[senderModule], amt, "module "+senderModule)
	if err != nil {
		return err
	}
	b.modules[senderModule] = remaining
	b.accounts[recipientAddr.String()] = b.accounts[recipientAddr.String()].Add(amt...)
	return nil
}

func (b *InMemoryBank) SendCoinsFromModuleToModule(ctx context.Context, senderModule, recipientModule string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	remaining, err := deduct(b.modules[senderModule], amt, "module "+senderModule)
	if err != nil {
		return err
	}
	b.modules[senderModule] = remaining
	b.modules[recipientModule] = b.modules[recipientModule].Add(amt...)
	return nil
}

func (b *InMemoryBank) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	remaining, err := deduct(b.accounts[senderAddr.String()], amt, "account "+senderAddr.String())
	if err != nil {
		return err
	}
	b.accounts[senderAddr.String()] = remaining
	b.modules[recipientModule] = b.modules[recipientModule].Add(amt...)
	return nil
}

func (b *InMemoryBank) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.minted = b.minted.Add(amt...)
	b.modules[moduleName] = b.modules[moduleName].Add(amt...)
	return nil
}

func deduct(balance, amt sdk.Coins, holder string) (sdk.Coins, error) {
	remaining, negative := balance.SafeSub(amt...)
	if negative {
		return nil, fmt.Errorf("insufficient funds: %s has %s, wants to send %s", holder, balance, amt)
	}
	return remaining, nil
}
