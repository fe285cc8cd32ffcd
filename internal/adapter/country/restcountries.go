// Package country validates checkout countries against the REST Countries
// API: only countries of the Americas are accepted.
package country

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rl1809/storefront/internal/pkg/errs"
)

const DefaultBaseURL = "https://restcountries.com/v3.1"

// ErrCountryNotAllowed marks a country outside the Americas region.
var ErrCountryNotAllowed = errs.New("country is not in the americas region")

type RESTCountriesValidator struct {
	baseURL string
	client  *http.Client
}

func NewRESTCountriesValidator(client *http.Client, baseURL string) *RESTCountriesValidator {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &RESTCountriesValidator{baseURL: baseURL, client: client}
}

type countryRecord struct {
	CCA2 string `json:"cca2"`
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
}

// Validate checks that code names a country of the Americas and returns its
// common name. The cca2 match is case-insensitive.
func (v *RESTCountriesValidator) Validate(ctx context.Context, code string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/region/america", nil)
	if err != nil {
		return "", errs.Wrap(err, "build countries request")
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "fetch americas countries")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.New("countries api returned " + resp.Status)
	}

	var countries []countryRecord
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return "", errs.Wrap(err, "decode countries response")
	}

	for _, c := range countries {
		if strings.EqualFold(c.CCA2, code) {
			return c.Name.Common, nil
		}
	}
	return "", ErrCountryNotAllowed
}
