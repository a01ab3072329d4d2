package options

type FilterOptions struct {
	Needle string
}

func (fo *FilterOptions) Contains(needle string) *FilterOptions {
	fo.Needle = needle
	return fo
}

// IsEmpty reports whether the options keep every record.
func (fo *FilterOptions) IsEmpty() bool {
	return fo == nil || fo.Needle == ""
}

func Filter() *FilterOptions {
	return &FilterOptions{}
}
