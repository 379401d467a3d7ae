package preview

// alertExpiredMsg is delivered when an alert's timeout elapses.
type alertExpiredMsg struct {
	ID string
}
