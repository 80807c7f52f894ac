package model

// serviceableCities is the fixed set of cities the referral service
// operates in. Matching is exact; there is no normalization.
var serviceableCities = map[string]struct{}{
	"Delhi":     {},
	"Noida":     {},
	"Faridabad": {},
}

// CityServiceable reports whether the service operates in the given city.
func CityServiceable(city string) bool {
	_, ok := serviceableCities[city]
	return ok
}
