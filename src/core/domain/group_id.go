package domain

// GroupID identifies a group of people. It has the Object-Id format plus
// reserved values for the well-known groups.
type GroupID struct {
	ObjectID
}

var (
	// GroupAll is every person related to the user.
	GroupAll = ParseGroupID("@all")

	// GroupFriends is the user's friends.
	GroupFriends = ParseGroupID("@friends")

	// GroupSelf is the user alone.
	GroupSelf = ParseGroupID("@self")
)

// ParseGroupID reads a group id in wire form, see ParseObjectID.
func ParseGroupID(s string) GroupID {
	return GroupID{ParseObjectID(s)}
}

// NewGroupID builds a group id in domain from a raw local id.
func NewGroupID(domain DomainName, rawLocalID string) GroupID {
	return GroupID{NewObjectID(domain, rawLocalID)}
}

// GroupIDFrom reinterprets id as a group id without re-encoding.
func GroupIDFrom(id ObjectID) GroupID {
	return GroupID{id}
}

// IsReserved reports whether g is one of the reserved group ids.
func (g GroupID) IsReserved() bool {
	return g == GroupAll || g == GroupFriends || g == GroupSelf
}

// Equal reports whether g and other are the same group id.
func (g GroupID) Equal(other GroupID) bool {
	return g.ObjectID.Equal(other.ObjectID)
}
