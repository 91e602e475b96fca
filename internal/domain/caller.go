package domain

// Caller is the authenticated identity a request acts as.
type Caller struct {
	UserID int64
	Role   Role
}

func (c Caller) Is(role Role) bool { return c.Role == role }
