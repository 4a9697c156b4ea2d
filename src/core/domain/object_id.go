package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// GlobalSeparator joins the domain and local parts of a global identifier.
const GlobalSeparator = ':'

// ObjectID is an opaque identifier for a record, either local to one
// provider or global:
//
//	Object-Id = Local-Id / Global-Id
//	Local-Id  = *( ALPHA / DIGIT / "_" / "." / "-" )
//	Global-Id = Domain-Name ":" Local-Id
//
// Both parts are stored in encoded form. ObjectIDs are comparable values and
// can be used as map keys; a copy is made by assignment.
type ObjectID struct {
	domain  DomainName
	localID string
}

// ParseObjectID reads the wire form produced by String. The domain is
// everything before the last colon and the local id everything after it;
// both are taken as already encoded. Without a colon past the first
// character the whole string is a local id. ParseObjectID never fails.
func ParseObjectID(s string) ObjectID {
	if idx := strings.LastIndexByte(s, GlobalSeparator); idx > 0 {
		return ObjectID{
			domain:  DomainNameFromWire(s[:idx]),
			localID: s[idx+1:],
		}
	}
	return ObjectID{localID: s}
}

// NewObjectID builds an identifier in domain from a raw local id, encoding
// it with the default encoder. A zero domain yields a local identifier.
func NewObjectID(domain DomainName, rawLocalID string) ObjectID {
	return defaultEncoder.NewObjectID(domain, rawLocalID)
}

// NewObjectIDInDomain builds an identifier from a raw domain name and a raw
// local id, encoding both with the default encoder.
func NewObjectIDInDomain(rawDomain, rawLocalID string) ObjectID {
	return defaultEncoder.NewObjectIDInDomain(rawDomain, rawLocalID)
}

// NewObjectID is NewObjectID using e.
func (e *Encoder) NewObjectID(domain DomainName, rawLocalID string) ObjectID {
	return ObjectID{domain: domain, localID: e.Encode(rawLocalID)}
}

// NewObjectIDInDomain is NewObjectIDInDomain using e.
func (e *Encoder) NewObjectIDInDomain(rawDomain, rawLocalID string) ObjectID {
	return e.NewObjectID(e.NewDomainName(rawDomain), rawLocalID)
}

// Domain returns the owning domain, zero for a local identifier.
func (id ObjectID) Domain() DomainName {
	return id.domain
}

// HasDomain reports whether id carries a domain.
func (id ObjectID) HasDomain() bool {
	return !id.domain.IsZero()
}

// IsGlobal reports whether id is a Global-Id ("domain:localId") rather than
// a Local-Id.
func (id ObjectID) IsGlobal() bool {
	return id.HasDomain()
}

// LocalID returns the encoded local part.
func (id ObjectID) LocalID() string {
	return id.localID
}

// LocalIDDecoded returns the raw local part.
func (id ObjectID) LocalIDDecoded() string {
	return defaultEncoder.Decode(id.localID)
}

// IsZero reports whether id has neither domain nor local id.
func (id ObjectID) IsZero() bool {
	return id.domain.IsZero() && id.localID == ""
}

// Equal reports whether both identifiers have the same domain and the same
// encoded local id.
func (id ObjectID) Equal(other ObjectID) bool {
	return id.domain.Equal(other.domain) && id.localID == other.localID
}

// String returns the wire form: "domain:localId" or "localId".
func (id ObjectID) String() string {
	if id.domain.IsZero() {
		return id.localID
	}
	return id.domain.String() + string(GlobalSeparator) + id.localID
}

// MarshalText implements encoding.TextMarshaler.
func (id ObjectID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseObjectID.
func (id *ObjectID) UnmarshalText(text []byte) error {
	*id = ParseObjectID(string(text))
	return nil
}

// Scan implements sql.Scanner. NULL scans to the zero identifier.
func (id *ObjectID) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*id = ObjectID{}
	case string:
		*id = ParseObjectID(v)
	case []byte:
		*id = ParseObjectID(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ObjectID", value)
	}
	return nil
}

// Value implements driver.Valuer. The zero identifier is stored as NULL.
func (id ObjectID) Value() (driver.Value, error) {
	if id.IsZero() {
		return nil, nil
	}
	return id.String(), nil
}

// DomainScoped is implemented by every identifier kind.
type DomainScoped interface {
	comparable
	Domain() DomainName
}

// GroupByDomain partitions ids by domain. Local identifiers are collected
// under the zero DomainName. Each distinct id appears once, in the bucket of
// its own domain, in first-seen order.
func GroupByDomain[T DomainScoped](ids []T) map[DomainName][]T {
	groups := make(map[DomainName][]T)
	seen := make(map[T]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		d := id.Domain()
		groups[d] = append(groups[d], id)
	}
	return groups
}
