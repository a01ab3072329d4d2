package vpic

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

func Print(w io.Writer, ms []Manufacturer) error {
	if _, err := fmt.Fprintf(w, "%d manufacturers found\n", len(ms)); err != nil {
		return errors.Wrap(err, "could not write manufacturers count")
	}

	for i, m := range ms {
		if _, err := fmt.Fprintf(
			w,
			"Manufacturer #%d\n\t Manufacturer Name: %s\n\t Manufacturer Common Name: %s\n\t Country: %s\n\n",
			i+1, m.Name, m.CommonName, m.Country,
		); err != nil {
			return errors.Wrapf(err, "could not write manufacturer #%d", i+1)
		}
	}

	return nil
}
