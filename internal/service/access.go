package service

// Ownership resolution. CanActOn is the single place that decides whether
// an authenticated user may mutate a resource. It is a pure function over
// already-fetched data: callers load the target first, then ask.
//
// Reads are public and never pass through here.

// Actor is the authenticated user attempting an operation
type Actor struct {
	UserID  string
	IsAdmin bool
}

// Action is the kind of mutation being attempted
type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ResourceKind identifies the type of an owned resource
type ResourceKind string

const (
	ResourceUser   ResourceKind = "user"
	ResourcePlace  ResourceKind = "place"
	ResourceReview ResourceKind = "review"
)

// OwnedResource is the minimal view of a resource the resolver needs:
// its kind, its identity, and who owns it. For a user the resource is
// its own owner.
type OwnedResource struct {
	Kind    ResourceKind
	ID      string
	OwnerID string
}

// UserResource describes a user account as an ownable resource
func UserResource(id string) OwnedResource {
	return OwnedResource{Kind: ResourceUser, ID: id, OwnerID: id}
}

// PlaceResource describes a place as an ownable resource
func PlaceResource(id, ownerID string) OwnedResource {
	return OwnedResource{Kind: ResourcePlace, ID: id, OwnerID: ownerID}
}

// ReviewResource describes a review as an ownable resource (the author owns it)
func ReviewResource(id, authorID string) OwnedResource {
	return OwnedResource{Kind: ResourceReview, ID: id, OwnerID: authorID}
}

// CanActOn reports whether the actor may perform the action on the resource.
// Admins may act on anything. Everyone else may act only on what they own:
// their own account, their own places, their own reviews. Unknown resource
// kinds are denied.
func CanActOn(actor Actor, resource OwnedResource, action Action) bool {
	if actor.IsAdmin {
		return true
	}

	switch resource.Kind {
	case ResourceUser, ResourcePlace, ResourceReview:
		return actor.UserID != "" && actor.UserID == resource.OwnerID
	default:
		return false
	}
}
