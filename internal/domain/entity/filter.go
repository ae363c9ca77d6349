package entity

const (
	// DefaultPageSize is used when a lookup does not specify a page size.
	DefaultPageSize = 10
	// DefaultPageNumber is used when a lookup does not specify a page number.
	DefaultPageNumber = 1
)

// AddressFilter selects stored addresses. A zipcode takes precedence over every other field;
// without one, the remaining fields are optional and ANDed together.
type AddressFilter struct {
	Zipcode      *Zipcode
	Neighborhood *string
	Complement   *string
	CityIBGE     *int
	StateAcronym *StateAcronym
}

// HasZipcode reports whether the filter pins a single zipcode.
func (f AddressFilter) HasZipcode() bool {
	return f.Zipcode != nil
}

// Page describes a window over the filtered rows.
type Page struct {
	Size   int
	Number int
}

// NewPage returns a page, falling back to defaults for non-positive values.
func NewPage(size, number int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if number <= 0 {
		number = DefaultPageNumber
	}

	return Page{Size: size, Number: number}
}

// Offset returns the number of rows to skip: zero for the first page, size*(number-1) otherwise.
func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}

	return p.Size * (p.Number - 1)
}
