// Package chains is the static registry of chains an order can use, with the
// family, network class and HTLC timelock of each.
package chains

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

// Family groups chains that share address and contract formats
type Family string

const (
	FamilyBitcoin Family = "bitcoin"
	FamilyEVM     Family = "evm"
)

// Network is mainnet or testnet
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// Chain describes a supported chain
type Chain struct {
	ID       string  `json:"id"`       // e.g., "ethereum_sepolia"
	Name     string  `json:"name"`     // e.g., "Ethereum Sepolia"
	Family   Family  `json:"family"`   // Address family
	Network  Network `json:"network"`  // Mainnet or testnet
	TimeLock uint64  `json:"timelock"` // Initiator refund timelock, in blocks of this chain
}

// Timelocks target roughly 24 hours on the initiating chain.
var defaultChains = []Chain{
	{ID: "bitcoin", Name: "Bitcoin", Family: FamilyBitcoin, Network: Mainnet, TimeLock: 144},
	{ID: "bitcoin_testnet", Name: "Bitcoin Testnet", Family: FamilyBitcoin, Network: Testnet, TimeLock: 144},
	{ID: "bitcoin_regtest", Name: "Bitcoin Regtest", Family: FamilyBitcoin, Network: Testnet, TimeLock: 144},
	{ID: "ethereum", Name: "Ethereum", Family: FamilyEVM, Network: Mainnet, TimeLock: 7200},
	{ID: "ethereum_sepolia", Name: "Ethereum Sepolia", Family: FamilyEVM, Network: Testnet, TimeLock: 7200},
	{ID: "arbitrum", Name: "Arbitrum One", Family: FamilyEVM, Network: Mainnet, TimeLock: 7200},
	{ID: "arbitrum_sepolia", Name: "Arbitrum Sepolia", Family: FamilyEVM, Network: Testnet, TimeLock: 7200},
	{ID: "base", Name: "Base", Family: FamilyEVM, Network: Mainnet, TimeLock: 43200},
	{ID: "base_sepolia", Name: "Base Sepolia", Family: FamilyEVM, Network: Testnet, TimeLock: 43200},
	{ID: "ethereum_localnet", Name: "Ethereum Localnet", Family: FamilyEVM, Network: Testnet, TimeLock: 7200},
	{ID: "arbitrum_localnet", Name: "Arbitrum Localnet", Family: FamilyEVM, Network: Testnet, TimeLock: 7200},
}

// Registry answers chain metadata lookups. It is read-only after construction
// and safe for concurrent use.
type Registry struct {
	chains map[string]Chain
}

// NewRegistry builds a registry from the given chains, or from the built-in
// table when none are given.
func NewRegistry(chains ...Chain) *Registry {
	if len(chains) == 0 {
		chains = defaultChains
	}

	r := &Registry{chains: make(map[string]Chain, len(chains))}
	for _, c := range chains {
		r.chains[Normalize(c.ID)] = c
	}
	return r
}

// Default returns a registry over the built-in chain table
func Default() *Registry {
	return NewRegistry()
}

// Lookup returns the chain with the given identifier
func (r *Registry) Lookup(chain string) (Chain, error) {
	c, ok := r.chains[Normalize(chain)]
	if !ok {
		return Chain{}, fmt.Errorf("%w: %q", ErrUnsupportedChain, chain)
	}
	return c, nil
}

// IsBitcoin reports whether the chain is a Bitcoin-family chain. Unknown
// chains are not Bitcoin.
func (r *Registry) IsBitcoin(chain string) bool {
	c, err := r.Lookup(chain)
	if err != nil {
		return false
	}
	return c.Family == FamilyBitcoin
}

// IsMainnet reports whether the chain is a mainnet chain
func (r *Registry) IsMainnet(chain string) (bool, error) {
	c, err := r.Lookup(chain)
	if err != nil {
		return false, err
	}
	return c.Network == Mainnet, nil
}

// TimeLock returns the initiator timelock for the chain
func (r *Registry) TimeLock(chain string) (uint64, error) {
	c, err := r.Lookup(chain)
	if err != nil {
		return 0, err
	}
	return c.TimeLock, nil
}

// Canonical returns the registered identifier of chain. Unknown chains are
// returned normalized.
func (r *Registry) Canonical(chain string) string {
	c, err := r.Lookup(chain)
	if err != nil {
		return Normalize(chain)
	}
	return c.ID
}

// All returns every registered chain sorted by identifier
func (r *Registry) All() []Chain {
	out := make([]Chain, 0, len(r.chains))
	for _, c := range r.chains {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Normalize folds case and surrounding whitespace out of a chain identifier
func Normalize(chain string) string {
	return strings.ToLower(strings.TrimSpace(chain))
}
