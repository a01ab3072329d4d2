package vpic

import "github.com/pkg/errors"

var ErrRequestFailed = errors.New("request to manufacturer registry failed")
var ErrUnexpectedStatus = errors.New("manufacturer registry returned unexpected status")
var ErrInvalidJSON = errors.New("response body is not valid json")

var ErrNotAnObject = errors.New("response is not a JSON object")
var ErrResultsNotFound = errors.New("Results not found in response")
var ErrMalformedResults = errors.New("Results is malformed")

var ErrNoManufacturerFound = errors.New("no manufacturer found")

// IsShapeError reports whether err means the body parsed as JSON
// but did not have the expected structure.
func IsShapeError(err error) bool {
	return errors.Is(err, ErrNotAnObject) ||
		errors.Is(err, ErrResultsNotFound) ||
		errors.Is(err, ErrMalformedResults)
}
