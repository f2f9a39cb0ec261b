// Package entities contains core business entities.
package entities

// Team groups users under one coach. ID is stable and survives coach
// replacement; ManagerID points at the current coach and is never listed
// among MemberIDs.
type Team struct {
	ID        string
	Name      string
	ManagerID string
	MemberIDs []string
}

// HasMember reports whether the user id is in the team member set.
func (t Team) HasMember(userID string) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
