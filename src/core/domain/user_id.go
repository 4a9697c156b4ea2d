package domain

// UserID identifies a person. It has the Object-Id format plus reserved
// values:
//
//	User-Id = Object-Id / "@owner" / "@viewer" / "@me"
type UserID struct {
	ObjectID
}

var (
	// UserMe is the authenticated user making the request.
	UserMe = ParseUserID("@me")

	// UserOwner is the user who owns the current page.
	UserOwner = ParseUserID("@owner")

	// UserViewer is the user who is viewing the current page.
	UserViewer = ParseUserID("@viewer")
)

// ParseUserID reads a user id in wire form, see ParseObjectID.
func ParseUserID(s string) UserID {
	return UserID{ParseObjectID(s)}
}

// NewUserID builds a user id in domain from a raw local id.
func NewUserID(domain DomainName, rawLocalID string) UserID {
	return UserID{NewObjectID(domain, rawLocalID)}
}

// UserIDFrom reinterprets id as a user id without re-encoding.
func UserIDFrom(id ObjectID) UserID {
	return UserID{id}
}

// IsReserved reports whether u is one of the reserved user ids.
func (u UserID) IsReserved() bool {
	return u == UserMe || u == UserOwner || u == UserViewer
}

// Equal reports whether u and other are the same user id.
func (u UserID) Equal(other UserID) bool {
	return u.ObjectID.Equal(other.ObjectID)
}
