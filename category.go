package apiguide

import (
	"encoding"
	"fmt"
)

// Category groups related guidelines.
type Category int

const (
	categoryInvalid Category = iota

	Naming
	Interoperability
	Predictability
	Flexibility
	TypeSafety
	Dependability
	Debuggability
	FutureProofing
	Necessities
	Documentation
	Macros

	categoryEnd
)

// categoryNames holds display names, they are what Entries and ParseCategory accept.
var categoryNames = [...]string{
	Naming:           "Naming",
	Interoperability: "Interoperability",
	Predictability:   "Predictability",
	Flexibility:      "Flexibility",
	TypeSafety:       "Type Safety",
	Dependability:    "Dependability",
	Debuggability:    "Debuggability",
	FutureProofing:   "Future Proofing",
	Necessities:      "Necessities",
	Documentation:    "Documentation",
	Macros:           "Macros",
}

// categoryPages holds pages of the published guidelines book.
var categoryPages = [...]string{
	Naming:           "naming",
	Interoperability: "interoperability",
	Predictability:   "predictability",
	Flexibility:      "flexibility",
	TypeSafety:       "type-safety",
	Dependability:    "dependability",
	Debuggability:    "debuggability",
	FutureProofing:   "future-proofing",
	Necessities:      "necessities",
	Documentation:    "documentation",
	Macros:           "macros",
}

func (c Category) valid() bool {
	return c > categoryInvalid && c < categoryEnd
}

// String returns the category name, e.g. "Type Safety".
func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("category-unknown(%d)", c)
	}

	return categoryNames[c]
}

// URL returns a link to the category page of the published guidelines.
func (c Category) URL() string {
	if !c.valid() {
		return ""
	}

	return guidelinesBaseURL + categoryPages[c] + ".html"
}

// Entries returns guidelines of the category in their stable order.
// An unknown category has none.
func (c Category) Entries() []Entry {
	return get().categoryEntries(c)
}

// ParseCategory returns a category by its name.
func ParseCategory(name string) (Category, error) {
	c, ok := get().byName.Get(name)
	if !ok {
		return categoryInvalid, &NotFoundError{Kind: NotFoundCategory, Name: name}
	}

	return c, nil
}

var (
	_ encoding.TextMarshaler   = Category(0)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// MarshalText for setting values with configs, CLI, etc.
func (c Category) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("cannot marshal invalid Category(%d)", c)
	}

	return []byte(categoryNames[c]), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (c *Category) UnmarshalText(rawtext []byte) error {
	v, err := ParseCategory(string(rawtext))
	if err != nil {
		return err
	}

	*c = v
	return nil
}
