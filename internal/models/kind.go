package models

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the entity categories the record keeper tracks.
// Every kind owns its own mapping and its own backing snapshot.
type Kind string

const (
	KindEmployee Kind = "employee"
	KindClient   Kind = "client"
	KindGuest    Kind = "guest"
	KindSupplier Kind = "supplier"
	KindVenue    Kind = "venue"
	KindEvent    Kind = "event"
)

// ErrUnknownKind is returned when a kind name does not match any entity category
var ErrUnknownKind = errors.New("unknown record kind")

// Kinds returns every kind in the order the stores are loaded.
func Kinds() []Kind {
	return []Kind{KindEmployee, KindEvent, KindClient, KindGuest, KindSupplier, KindVenue}
}

// NameKinds returns the kinds whose payload is a bare display name.
func NameKinds() []Kind {
	return []Kind{KindEmployee, KindClient, KindGuest, KindSupplier, KindVenue}
}

// ParseKind maps a singular or plural kind name to its Kind, ignoring case
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if name == string(k) || name == k.Plural() {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// HoldsName reports whether the kind's payload is a bare display name
func (k Kind) HoldsName() bool {
	return k.Valid() && k != KindEvent
}

// Title returns the capitalized singular name used in messages ("Employee")
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Plural returns the plural stem that names the kind's snapshot ("employees")
func (k Kind) Plural() string {
	return string(k) + "s"
}

func (k Kind) String() string {
	return string(k)
}
