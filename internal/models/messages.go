package models

// User facing status messages.
const (
	MessageItemAdded      = "Item added successfully!"
	MessageItemUpdated    = "Item updated successfully!"
	MessageProfileUpdated = "Profile updated"
	MessageAvatarUpdated  = "Avatar updated!"
	MessageNoUser         = "User not found. Please log in or sign up."
	MessageGeocodeFailed  = "Unable to retrieve location details."
	MessageLoggedOut      = "Logged out successfully"
	MessageSessionExpired = "Session expired. Please log in again."
)
