package domain

import "time"

// Provider is a federated container registered with this service, keyed by
// the domain name that prefixes its global identifiers.
type Provider struct {
	ID          int64
	Domain      DomainName
	DisplayName string
	CreatedAt   time.Time
}

// ReservedKind names the family of a reserved identifier.
type ReservedKind string

const (
	ReservedNone  ReservedKind = ""
	ReservedUser  ReservedKind = "user"
	ReservedGroup ReservedKind = "group"
)

// ReservedKindOf reports which reserved family id belongs to, if any.
func ReservedKindOf(id ObjectID) ReservedKind {
	switch {
	case UserIDFrom(id).IsReserved():
		return ReservedUser
	case GroupIDFrom(id).IsReserved():
		return ReservedGroup
	default:
		return ReservedNone
	}
}
