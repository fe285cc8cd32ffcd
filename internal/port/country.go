package port

import "context"

// CountryValidator checks a country code during checkout and resolves it to
// a canonical country name. It is decoupled from the reservation engine and
// never touches stock.
type CountryValidator interface {
	Validate(ctx context.Context, code string) (string, error)
}
