package vpic

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	resultsKey    = "Results"
	nameKey       = "Mfr_Name"
	commonNameKey = "Mfr_CommonName"
	countryKey    = "Country"
)

// Manufacturer is one entry of the registry's Results list.
// Fields missing from the source, or not strings there, are empty.
type Manufacturer struct {
	Name       string
	CommonName string
	Country    string
}

func newManufacturerFromJSON(obj gjson.Result) Manufacturer {
	return Manufacturer{
		Name:       stringOrDefault(obj, nameKey, ""),
		CommonName: stringOrDefault(obj, commonNameKey, ""),
		Country:    stringOrDefault(obj, countryKey, ""),
	}
}

// Contains reports whether the legal name holds needle as a literal substring.
func (m Manufacturer) Contains(needle string) bool {
	return strings.Contains(m.Name, needle)
}

func stringOrDefault(obj gjson.Result, key, def string) string {
	v := obj.Get(key)
	if v.Type != gjson.String {
		return def
	}

	return v.Str
}

// Extract walks the Results list of a registry response body.
func Extract(body []byte) ([]Manufacturer, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, ErrNotAnObject
	}

	results := root.Get(resultsKey)
	if !results.Exists() {
		return nil, ErrResultsNotFound
	}

	if !results.IsArray() {
		return nil, errors.Wrapf(ErrMalformedResults, "expected an array, got %s", results.Type.String())
	}

	var (
		ms  []Manufacturer
		err error
		idx int
	)

	results.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			err = errors.Wrapf(ErrMalformedResults, "element #%d is not an object", idx)
			return false
		}

		ms = append(ms, newManufacturerFromJSON(v))
		idx++
		return true
	})

	if err != nil {
		return nil, err
	}

	return ms, nil
}
