package identity

import "github.com/google/uuid"

// Identity is the validated caller produced by the identity gate. Use cases
// receive it explicitly on every call.
type Identity struct {
	UserID      uuid.UUID
	DisplayName string
	IsOwner     bool
}

func (i Identity) IsZero() bool {
	return i.UserID == uuid.Nil
}

// CanActFor reports whether the caller may act on data owned by userID,
// either as that user or as the owner of the resource the data belongs to.
func (i Identity) CanActFor(userID, resourceOwnerID uuid.UUID) bool {
	if i.IsZero() {
		return false
	}
	if i.UserID == userID {
		return true
	}
	return i.IsOwner && i.UserID == resourceOwnerID
}
