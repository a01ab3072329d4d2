package vpic

import (
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()

	b, err := ioutil.ReadFile("./__fixtures__/" + name)
	if err != nil {
		t.Fatal(err)
	}

	return b
}

func TestExtract(t *testing.T) {
	t.Run("it projects three fields from every element", func(t *testing.T) {
		ms, err := Extract(readFixture(t, "manufacturers.json"))
		require.NoError(t, err)
		require.Len(t, ms, 4)

		assert.Equal(t, Manufacturer{Name: "TESLA, INC.", CommonName: "Tesla", Country: "UNITED STATES (USA)"}, ms[0])
		assert.Equal(t, Manufacturer{Name: "RIVIAN AUTOMOTIVE, LLC", CommonName: "Rivian", Country: "UNITED STATES (USA)"}, ms[1])
	})

	t.Run("null and non string values become empty", func(t *testing.T) {
		ms, err := Extract(readFixture(t, "manufacturers.json"))
		require.NoError(t, err)

		assert.Equal(t, Manufacturer{Name: "BMW AG", CommonName: "", Country: "GERMANY"}, ms[2])
		assert.Equal(t, Manufacturer{Name: "HONDA MOTOR CO., LTD", CommonName: "", Country: ""}, ms[3])
	})

	t.Run("empty results list yields no records", func(t *testing.T) {
		ms, err := Extract([]byte(`{"Results":[]}`))
		require.NoError(t, err)
		assert.Len(t, ms, 0)
	})

	t.Run("element with no known keys is kept with empty fields", func(t *testing.T) {
		ms, err := Extract([]byte(`{"Results":[{"Mfr_ID":1}]}`))
		require.NoError(t, err)
		require.Len(t, ms, 1)
		assert.Equal(t, Manufacturer{}, ms[0])
	})
}

func TestExtract_Errors(t *testing.T) {
	tt := []struct {
		name  string
		body  string
		err   error
		shape bool
	}{
		{"invalid json", `{"Results":[`, ErrInvalidJSON, false},
		{"html body", `<html></html>`, ErrInvalidJSON, false},
		{"top level array", `[{"Mfr_Name":"TESLA, INC."}]`, ErrNotAnObject, true},
		{"top level string", `"Results"`, ErrNotAnObject, true},
		{"missing results", `{"Count":0,"Message":"ok"}`, ErrResultsNotFound, true},
		{"lowercase results key", `{"results":[]}`, ErrResultsNotFound, true},
		{"results is object", `{"Results":{"Mfr_Name":"TESLA, INC."}}`, ErrMalformedResults, true},
		{"results is null", `{"Results":null}`, ErrMalformedResults, true},
		{"element is string", `{"Results":[{"Mfr_Name":"A"},"B"]}`, ErrMalformedResults, true},
		{"element is number", `{"Results":[1]}`, ErrMalformedResults, true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			ms, err := Extract([]byte(tc.body))
			require.Error(t, err)
			assert.Nil(t, ms)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.shape, IsShapeError(err))
		})
	}
}

func TestManufacturer_Contains(t *testing.T) {
	m := Manufacturer{Name: "TESLA, INC.", CommonName: "Tesla", Country: "UNITED STATES (USA)"}

	assert.True(t, m.Contains("TESLA"))
	assert.True(t, m.Contains(", INC"))
	assert.True(t, m.Contains(""))
	assert.False(t, m.Contains("tesla"))
	assert.False(t, m.Contains("Tesla"))
	assert.False(t, m.Contains("UNITED"))
}
