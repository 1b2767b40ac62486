package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyID int64  // assigned by the store, 0 before insertion
	Code       string // 3 uppercase letters, e.g. "USD"
	Name       string // e.g. "US Dollar"
	Sign       string // e.g. "$"
}
