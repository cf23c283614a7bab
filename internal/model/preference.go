package model

// Preference is one row of notification_preferences, keyed by
// (uid, event_type). Both flags default to true on insert; a missing row
// means the user never expressed an opinion for that event type.
type Preference struct {
	UserID       string
	EventType    string
	EmailEnabled bool
	PushEnabled  bool
}
