package rentalsvc

// Policy computes the fee to rent a movie from the user's loyalty points
// and the movie's base daily rate.
type Policy func(points int, price float64) float64

// LegacyPolicy reproduces the historical discount cascade exactly as it
// shipped, first true branch wins. The second branch can never match
// (points cannot be below 50 and above 76 at once); it is kept because the
// cascade is a documented legacy policy, warts included.
func LegacyPolicy(points int, price float64) float64 {
	switch {
	case points > 51:
		return price * 98 / 100
	case points < 50 && points > 76:
		return price * 95 / 100
	case points < 100:
		return price * 90 / 100
	case points < 150:
		return price * 85 / 100
	case points < 200:
		return price * 80 / 100
	}
	return price
}

// TieredPolicy is the corrected schedule: discounts grow monotonically with
// points, and members at or below 50 points pay full price.
func TieredPolicy(points int, price float64) float64 {
	switch {
	case points >= 150:
		return price * 80 / 100
	case points >= 100:
		return price * 85 / 100
	case points >= 76:
		return price * 90 / 100
	case points >= 51:
		return price * 95 / 100
	}
	return price
}

// PolicyByName maps the PRICING_POLICY config value to a Policy,
// defaulting to the legacy cascade.
func PolicyByName(name string) Policy {
	if name == "tiered" {
		return TieredPolicy
	}
	return LegacyPolicy
}
