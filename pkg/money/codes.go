package money

// Currency is an ISO 4217 currency code as used on the wire (e.g. "USD").
// Codes missing from the constants below still decode and encode unchanged.
type Currency string

// Common currency codes
const (
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound
	INR Currency = "INR" // Indian Rupee
	AUD Currency = "AUD" // Australian Dollar
	CAD Currency = "CAD" // Canadian Dollar
	SGD Currency = "SGD" // Singapore Dollar
	AED Currency = "AED" // UAE Dirham
	BRL Currency = "BRL" // Brazilian Real
	JPY Currency = "JPY" // Japanese Yen
	KRW Currency = "KRW" // South Korean Won
	VND Currency = "VND" // Vietnamese Dong
	KWD Currency = "KWD" // Kuwaiti Dinar
	BHD Currency = "BHD" // Bahraini Dinar
	OMR Currency = "OMR" // Omani Rial
	JOD Currency = "JOD" // Jordanian Dinar
)

// zeroDecimal and threeDecimal list the known codes whose minor unit is not
// a hundredth.
var (
	zeroDecimal  = map[Currency]bool{JPY: true, KRW: true, VND: true}
	threeDecimal = map[Currency]bool{KWD: true, BHD: true, OMR: true, JOD: true}
)

// IsKnown reports whether c is one of the declared constants.
func (c Currency) IsKnown() bool {
	switch c {
	case USD, EUR, GBP, INR, AUD, CAD, SGD, AED, BRL, JPY, KRW, VND, KWD, BHD, OMR, JOD:
		return true
	}
	return false
}

// IsValid checks that c looks like an ISO 4217 code (three upper-case letters).
func (c Currency) IsValid() bool {
	return isUpperAlpha(string(c), 3)
}

// String returns the currency code as a string.
func (c Currency) String() string {
	return string(c)
}

// CountryCode is an ISO 3166-1 alpha-2 country code (e.g. "US").
type CountryCode string

// IsValid checks that c is two upper-case letters.
func (c CountryCode) IsValid() bool {
	return isUpperAlpha(string(c), 2)
}

func (c CountryCode) String() string {
	return string(c)
}

func isUpperAlpha(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < n; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
