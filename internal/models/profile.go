package models

import "time"

// Profile is the per-identity user document. Email mirrors the auth
// identity and is never taken from user input.
type Profile struct {
	ID                   string    `bson:"_id" json:"id"`
	Username             string    `bson:"username,omitempty" json:"username"`
	Email                string    `bson:"email,omitempty" json:"email"`
	Location             string    `bson:"location,omitempty" json:"location"`
	AvatarURL            string    `bson:"avatarURL,omitempty" json:"avatarURL,omitempty"`
	NotificationLeadTime *float64  `bson:"notificationLeadTime,omitempty" json:"notificationLeadTime,omitempty"`
	UpdatedAt            time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ProfileFields are the text fields saved together from the profile form.
// A nil lead time leaves the stored value alone.
type ProfileFields struct {
	Username             string
	Location             string
	Email                string
	NotificationLeadTime *float64
}

// ProfileUpdate is the request body of a profile save.
type ProfileUpdate struct {
	Username             string   `json:"username"`
	Location             string   `json:"location"`
	NotificationLeadTime *float64 `json:"notificationLeadTime" validate:"omitempty,min=0,max=168"`
}

// ProfileView is a loaded profile with the lead time default applied.
type ProfileView struct {
	Username             string  `json:"username"`
	Email                string  `json:"email"`
	Location             string  `json:"location"`
	AvatarURL            string  `json:"avatarURL,omitempty"`
	NotificationLeadTime float64 `json:"notificationLeadTime"`
}
