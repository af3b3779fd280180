// internal/component/player.go
package component

import (
	"errors"
	"math"
)

var (
	// ErrInsufficientFunds is returned when a purchase costs more than the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrFundsOverflow is returned when a credit would overflow the balance.
	ErrFundsOverflow = errors.New("funds overflow")
)

// Player хранит валюту и жизни игрока. Exactly one per match.
type Player struct {
	Funds uint32
	Lives uint32
}

// AddFunds credits amount. On overflow the balance is left untouched.
func (p *Player) AddFunds(amount uint32) (uint32, error) {
	if amount > math.MaxUint32-p.Funds {
		return p.Funds, ErrFundsOverflow
	}
	p.Funds += amount
	return p.Funds, nil
}

// SpendFunds debits amount, or does nothing and returns ErrInsufficientFunds.
func (p *Player) SpendFunds(amount uint32) (uint32, error) {
	if amount > p.Funds {
		return p.Funds, ErrInsufficientFunds
	}
	p.Funds -= amount
	return p.Funds, nil
}

// CanAfford reports whether amount can be spent right now.
func (p *Player) CanAfford(amount uint32) bool {
	return p.Funds >= amount
}

// Damage removes lives, saturating at zero, and returns what is left.
func (p *Player) Damage(amount uint32) uint32 {
	if amount >= p.Lives {
		p.Lives = 0
		return 0
	}
	p.Lives -= amount
	return p.Lives
}

// Alive reports whether the player still has lives.
func (p *Player) Alive() bool {
	return p.Lives > 0
}
