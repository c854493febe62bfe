package storage

import "strings"

const thumbSuffix = "_thumb"

// ThumbKey derives the conventional thumbnail sibling for an original key:
// "venice.jpg" -> "venice_thumb.jpg". A key without an extension gets the
// suffix appended.
func ThumbKey(key string) string {
	dot := strings.LastIndex(key, ".")
	if dot < 0 {
		return key + thumbSuffix
	}
	return key[:dot] + thumbSuffix + key[dot:]
}

// IsThumbKey reports whether a key follows the thumbnail naming convention.
func IsThumbKey(key string) bool {
	dot := strings.LastIndex(key, ".")
	if dot < 0 {
		return strings.HasSuffix(key, thumbSuffix)
	}
	return strings.HasSuffix(key[:dot], thumbSuffix)
}

// OriginalKey maps a thumbnail key back to its original. Non-thumbnail keys
// are returned unchanged.
func OriginalKey(key string) string {
	if !IsThumbKey(key) {
		return key
	}
	dot := strings.LastIndex(key, ".")
	if dot < 0 {
		return strings.TrimSuffix(key, thumbSuffix)
	}
	return strings.TrimSuffix(key[:dot], thumbSuffix) + key[dot:]
}
