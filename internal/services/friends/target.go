package friends

// Target names the user a friend request is addressed to. It is either ByID
// or ByHandle; callers pick the variant from the input type, never by
// inspecting the content.
type Target interface {
	isTarget()
}

// ByID addresses a user by numeric id.
type ByID uint

// ByHandle addresses a user by exact email, falling back to exact display name.
type ByHandle string

func (ByID) isTarget()     {}
func (ByHandle) isTarget() {}
