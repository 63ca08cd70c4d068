package ironworks

import "math"

const (
	minSeats = 2
	maxSeats = 4

	// StartingMoney is each player's initial cash.
	StartingMoney = 17

	// HandSize is dealt to every seat regardless of player count.
	HandSize = 8

	CoalMarketFallbackPrice = 8
	IronMarketFallbackPrice = 6
	InitialCoalMarketUnits  = 13
	InitialIronMarketUnits  = 8
	MaxCoalMarketUnits      = 14
	MaxIronMarketUnits      = 9
)

// RequiredActions is the per-turn action quota for a round. The opening
// round allows a single action; every later round allows two.
func RequiredActions(round int) int {
	if round <= 1 {
		return 1
	}
	return 2
}

// dynamicMarketPrice rises linearly from 1 at full stock toward the
// fallback price as stock approaches zero, clamped to [1, fallback] and
// floored to an integer. Zero stock always costs the fallback price.
func dynamicMarketPrice(unitsLeft, initialUnits, fallbackPrice int) int {
	if unitsLeft <= 0 {
		return fallbackPrice
	}
	normalized := float64(unitsLeft) / float64(initialUnits)
	if normalized > 1 {
		normalized = 1
	}
	value := int(math.Floor(1 + (1-normalized)*float64(fallbackPrice-1)))
	if value < 1 {
		return 1
	}
	if value > fallbackPrice {
		return fallbackPrice
	}
	return value
}

// CoalMarketPrice is the cost of one coal unit at the given stock level.
func CoalMarketPrice(unitsLeft int) int {
	return dynamicMarketPrice(unitsLeft, InitialCoalMarketUnits, CoalMarketFallbackPrice)
}

// IronMarketPrice is the cost of one iron unit at the given stock level.
func IronMarketPrice(unitsLeft int) int {
	return dynamicMarketPrice(unitsLeft, InitialIronMarketUnits, IronMarketFallbackPrice)
}
