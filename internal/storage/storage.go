// Package storage uploads image bytes to a public image host and hands back
// the secure URL the image is served from.
package storage

import "errors"

const AvatarFolder = "avatars"

var ErrEmptyImage = errors.New("image data is empty")
