package domain

// Address is a postal address; every part is optional.
type Address struct {
	Street  *string
	Zip     *string
	City    *string
	Country *string
	State   *string
}

// IsEmpty reports whether no part of the address is set.
func (a Address) IsEmpty() bool {
	return a.Street == nil && a.Zip == nil && a.City == nil && a.Country == nil && a.State == nil
}
