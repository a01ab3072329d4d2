package vpic

import "github.com/denismitr/vpic/options"

// Filter keeps the manufacturers matching fo. An empty needle keeps all of them.
// A result with no survivors is ErrNoManufacturerFound, never an empty slice.
func Filter(ms []Manufacturer, fo *options.FilterOptions) ([]Manufacturer, error) {
	var result []Manufacturer

	if fo.IsEmpty() {
		result = append(result, ms...)
	} else {
		for _, m := range ms {
			if m.Contains(fo.Needle) {
				result = append(result, m)
			}
		}
	}

	if len(result) == 0 {
		return nil, ErrNoManufacturerFound
	}

	return result, nil
}
