package domain

// DomainName identifies the provider that owns an identifier, for example
// "twitter.com". The name is kept in encoded form; the zero value means no
// domain.
type DomainName struct {
	name string
}

// NewDomainName encodes raw with the default encoder.
func NewDomainName(raw string) DomainName {
	return defaultEncoder.NewDomainName(raw)
}

// NewDomainName encodes raw with e.
func (e *Encoder) NewDomainName(raw string) DomainName {
	return DomainName{name: e.Encode(raw)}
}

// DomainNameFromWire wraps a name that is already in encoded form.
func DomainNameFromWire(encoded string) DomainName {
	return DomainName{name: encoded}
}

// String returns the encoded name.
func (d DomainName) String() string {
	return d.name
}

// Decoded returns the raw domain name.
func (d DomainName) Decoded() string {
	return defaultEncoder.Decode(d.name)
}

// IsZero reports whether d is empty.
func (d DomainName) IsZero() bool {
	return d.name == ""
}

// Equal reports whether both names have the same encoded form.
func (d DomainName) Equal(other DomainName) bool {
	return d.name == other.name
}

// MarshalText implements encoding.TextMarshaler.
func (d DomainName) MarshalText() ([]byte, error) {
	return []byte(d.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is taken as the
// encoded form and is not encoded again.
func (d *DomainName) UnmarshalText(text []byte) error {
	d.name = string(text)
	return nil
}
