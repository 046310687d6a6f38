package item

import "strings"

// Key identifies a registered custom item: a namespace (usually the
// registering plugin) plus an id unique within it. Keys are normalized
// to lower case so lookup strings compare case-insensitively.
type Key struct {
	Namespace string
	ID        string
}

// NewKey builds a normalized key.
func NewKey(namespace, id string) Key {
	return Key{
		Namespace: strings.ToLower(namespace),
		ID:        strings.ToLower(id),
	}
}

func (k Key) String() string {
	return k.Namespace + KeySeparator + k.ID
}
