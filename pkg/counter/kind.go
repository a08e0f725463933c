package counter

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies one of the two item kinds kept on the counter.
type Kind uint8

const (
	Margherita Kind = iota
	Marinara
)

var kindNames = [...]string{
	Margherita: "margherita",
	Marinara:   "marinara",
}

// displayNames is computed once: a cases.Caser must not be shared between goroutines.
var displayNames = func() [len(kindNames)]string {
	caser := cases.Title(language.Italian)
	var out [len(kindNames)]string
	for i, name := range kindNames {
		out[i] = caser.String(name)
	}
	return out
}()

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{Margherita, Marinara}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// DisplayName returns the human-facing pizza name, e.g. "Margherita".
func (k Kind) DisplayName() string {
	if !k.Valid() {
		return "Unknown"
	}
	return displayNames[k]
}

// MarshalText renders the kind by name in logs and reports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
