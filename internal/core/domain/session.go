package domain

// Session identifies the signed-in member an engine instance acts for. It is
// built once at start-up and handed to the components that need it.
type Session struct {
	MemberID string
	DeviceID string
}

// IsLocal reports whether actorID is this session's member, i.e. the event
// echoes a command issued here.
func (s Session) IsLocal(actorID string) bool {
	return s.MemberID != "" && actorID == s.MemberID
}
