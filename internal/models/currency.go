package models

// Currency is the database row shape for the currencies table.
type Currency struct {
	CurrencyID int64
	Code       string
	Name       string
	Sign       string
}
