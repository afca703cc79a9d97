package solanaswapgo

import "fmt"

type ownerRole uint8

const (
	roleTracked ownerRole = 1 << iota
	roleReference

	roleOther ownerRole = 0
)

// classifyOwner maps a balance entry to the roles it plays. The reference
// role only applies to the authority's base mint account.
func (c Config) classifyOwner(owner, mint string) ownerRole {
	role := roleOther
	if owner == c.TrackedAccount {
		role |= roleTracked
	}
	if owner == c.ReferenceAuthority && mint == c.BaseMint {
		role |= roleReference
	}
	return role
}

type balanceDeltas struct {
	trackedMint   string
	preTracked    float64
	postTracked   float64
	preReference  float64
	postReference float64
}

type balanceSnapshot struct {
	mint      string
	tracked   float64
	reference float64
}

// extractBalances walks the post list, then the pre list. Only the post list
// contributes the tracked mint.
func (p *Parser) extractBalances(pre, post OptionalField[[]TokenBalanceEntry]) (balanceDeltas, error) {
	postSnap, err := p.walkBalances("post", post)
	if err != nil {
		return balanceDeltas{}, err
	}

	preSnap, err := p.walkBalances("pre", pre)
	if err != nil {
		return balanceDeltas{}, err
	}

	return balanceDeltas{
		trackedMint:   postSnap.mint,
		preTracked:    preSnap.tracked,
		postTracked:   postSnap.tracked,
		preReference:  preSnap.reference,
		postReference: postSnap.reference,
	}, nil
}

// walkBalances records the tracked and reference amounts of one snapshot.
// Later entries overwrite earlier ones for the same role.
func (p *Parser) walkBalances(side string, field OptionalField[[]TokenBalanceEntry]) (balanceSnapshot, error) {
	balances, ok := field.Get()
	if !ok {
		return balanceSnapshot{}, fmt.Errorf("%w: %s token balances %s", ErrBalancesUnavailable, side, field.State())
	}

	var snap balanceSnapshot
	for i, balance := range balances {
		owner, ok := balance.Owner.Get()
		if !ok {
			return balanceSnapshot{}, fmt.Errorf("%w: %s token balance %d (account index %d) owner %s",
				ErrOwnerUnavailable, side, i, balance.AccountIndex, balance.Owner.State())
		}

		role := p.cfg.classifyOwner(owner, balance.Mint)
		if role&roleTracked != 0 {
			snap.mint = balance.Mint
			snap.tracked = uiAmountOrZero(balance.UITokenAmount.UIAmount)
		}
		if role&roleReference != 0 {
			snap.reference = uiAmountOrZero(balance.UITokenAmount.UIAmount)
		}
	}

	p.Log.Debugf("%s balances: %d entries, tracked %v (%s), reference %v",
		side, len(balances), snap.tracked, snap.mint, snap.reference)
	return snap, nil
}
