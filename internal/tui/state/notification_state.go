package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (blue)
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications (yellow)
	LevelWarning
	// LevelError represents error messages (red)
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState manages notification display state.
// Only the latest notification is shown; it is cleared on the next
// keypress.
type NotificationState struct {
	current *Notification
}

// NewNotificationState creates a new NotificationState with no notification.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Set replaces the current notification.
func (s *NotificationState) Set(level NotificationLevel, message string) {
	s.current = &Notification{Level: level, Message: message}
}

// Current returns the notification to display, nil when there is none.
func (s *NotificationState) Current() *Notification {
	return s.current
}

// Clear removes the notification.
func (s *NotificationState) Clear() {
	s.current = nil
}
