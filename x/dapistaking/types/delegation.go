package types

import (
	"cosmossdk.io/math"
)

// EraStake records the cumulative staked amount as of one era.
// E.g. {Era: 5, Amount: 1000} means that in era 5 the staked amount was 1000
// and stays 1000 for following eras until superseded by a later entry.
type EraStake struct {
	Era    uint64   `json:"era"`
	Amount math.Int `json:"amount"`
}

// Delegation is a compact, bounded history of one (delegator, provider)
// stake across unclaimed eras.
//
// Using <era, amount> notation, the ledger
//
//	[<5, 1000>, <6, 1500>, <8, 2100>, <9, 0>, <11, 500>]
//
// reads: 1000 staked in era 5, topped up to 1500 in era 6, unchanged in
// era 7, topped up to 2100 in era 8, fully unstaked in era 9 and 10, then
// 500 staked again in era 11. Only eras where the amount changed are stored,
// so storage grows with the number of stake changes, not with elapsed eras.
type Delegation struct {
	Stakes []EraStake `json:"stakes"`
}

// IsEmpty is true when no active stake and no unclaimed eras remain.
func (d Delegation) IsEmpty() bool {
	return len(d.Stakes) == 0
}

// Len returns the number of stored era-stake values.
func (d Delegation) Len() uint32 {
	return uint32(len(d.Stakes))
}

// LatestStakedValue returns the currently staked amount, zero when the
// delegator is fully unstaked.
func (d Delegation) LatestStakedValue() math.Int {
	if len(d.Stakes) == 0 {
		return math.ZeroInt()
	}
	return d.Stakes[len(d.Stakes)-1].Amount
}

// FirstUnclaimedEra returns the era the next Claim call would consume,
// or (0, false) when nothing is claimable.
func (d Delegation) FirstUnclaimedEra() (uint64, bool) {
	if len(d.Stakes) == 0 {
		return 0, false
	}
	return d.Stakes[0].Era, true
}

// Stake adds amount in the given era. The era must be equal to or greater
// than the latest recorded era: entries only ever advance.
//
//	stakes: [<5, 1000>, <7, 1300>]
//	Stake(7, 100) -> [<5, 1000>, <7, 1400>]
//	Stake(9, 200) -> [<5, 1000>, <7, 1400>, <9, 1600>]
func (d *Delegation) Stake(currentEra uint64, amount math.Int) error {
	if len(d.Stakes) == 0 {
		d.Stakes = append(d.Stakes, EraStake{Era: currentEra, Amount: amount})
		return nil
	}

	last := &d.Stakes[len(d.Stakes)-1]
	if last.Era > currentEra {
		return ErrUnexpectedStakeEra
	}

	newAmount := last.Amount.Add(amount)
	if last.Era == currentEra {
		last.Amount = newAmount
	} else {
		d.Stakes = append(d.Stakes, EraStake{Era: currentEra, Amount: newAmount})
	}
	return nil
}

// Unstake removes amount in the given era, clamping at zero. A leading
// zero-amount entry is dropped since it carries no claim value.
//
//	stakes: [<5, 1000>]
//	Unstake(5, 1000) -> []
func (d *Delegation) Unstake(currentEra uint64, amount math.Int) error {
	if len(d.Stakes) == 0 {
		return nil
	}

	last := &d.Stakes[len(d.Stakes)-1]
	if last.Era > currentEra {
		return ErrUnexpectedStakeEra
	}

	newAmount := last.Amount.Sub(amount)
	if newAmount.IsNegative() {
		newAmount = math.ZeroInt()
	}
	if last.Era == currentEra {
		last.Amount = newAmount
	} else {
		d.Stakes = append(d.Stakes, EraStake{Era: currentEra, Amount: newAmount})
	}

	d.dropZeroHead()
	return nil
}

// Claim consumes the oldest claimable era and returns its (era, amount)
// pair, or (0, zero) when the ledger is empty. Era 0 is never an active era,
// so the sentinel is unambiguous.
//
// Instead of removing the head outright, its era is advanced by one unless
// the next entry already covers era+1, so a single entry stands in for an
// arbitrarily long unclaimed run:
//
//	stakes: [<5, 1000>, <7, 1300>]
//	Claim() -> (5, 1000), stakes: [<6, 1000>, <7, 1300>]
//	Claim() -> (6, 1000), stakes: [<7, 1300>]
//	Claim() -> (7, 1300), stakes: [<8, 1300>]
func (d *Delegation) Claim() (uint64, math.Int) {
	if len(d.Stakes) == 0 {
		return 0, math.ZeroInt()
	}

	head := d.Stakes[0]
	if len(d.Stakes) == 1 || d.Stakes[1].Era > head.Era+1 {
		d.Stakes[0] = EraStake{Era: head.Era + 1, Amount: head.Amount}
	} else {
		d.Stakes = d.Stakes[1:]
	}

	d.dropZeroHead()
	return head.Era, head.Amount
}

func (d *Delegation) dropZeroHead() {
	if len(d.Stakes) > 0 && d.Stakes[0].Amount.IsZero() {
		d.Stakes = d.Stakes[1:]
	}
}
