package student

// DefaultCountry подставляется, если страна не указана.
const DefaultCountry = "USA"

// Address - почтовый адрес студента. Правил, кроме обязательности полей, нет.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// NewAddress создаёт адрес со страной по умолчанию.
func NewAddress(street, city, state, zipCode string) Address {
	return Address{
		Street:  street,
		City:    city,
		State:   state,
		ZipCode: zipCode,
		Country: DefaultCountry,
	}
}

// WithCountry возвращает копию адреса с другой страной.
func (a Address) WithCountry(country string) Address {
	a.Country = country
	return a
}

// normalized подставляет значения по умолчанию.
func (a Address) normalized() Address {
	if a.Country == "" {
		a.Country = DefaultCountry
	}
	return a
}

// UnmarshalJSON требует street, city, state, zip_code и отвергает лишние поля.
func (a *Address) UnmarshalJSON(data []byte) error {
	var street, city, state, zipCode, country *string
	err := decodeObject(data,
		required("street", into(&street)),
		required("city", into(&city)),
		required("state", into(&state)),
		required("zip_code", into(&zipCode)),
		optional("country", into(&country)),
	)
	if err != nil {
		return err
	}

	addr := NewAddress(*street, *city, *state, *zipCode)
	if country != nil {
		addr = addr.WithCountry(*country).normalized()
	}
	*a = addr
	return nil
}
