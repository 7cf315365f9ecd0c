package apiguide

import (
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/sirkon/apiguide/internal/index"
)

const guidelinesBaseURL = "https://rust-lang.github.io/api-guidelines/"

// Entry is a single guideline record.
type Entry struct {
	ID       ID
	Category Category

	// Title is the heading of the guideline in the published book.
	Title string

	// Summary is a short human-readable description.
	Summary string

	// URL points to the guideline section in the published book.
	URL string
}

// catalogue is built once and never mutated afterwards.
type catalogue struct {
	order   []Category
	groups  [categoryEnd][]Entry
	entries [idEnd]Entry
	all     []Entry
	byID    *index.Index[ID]
	byName  *index.Index[Category]
}

var get = sync.OnceValue(build)

func build() *catalogue {
	c := &catalogue{
		byID:   index.New[ID](),
		byName: index.New[Category](),
	}

	for _, decl := range declarations {
		if !c.byName.Add(categoryNames[decl.category], decl.category) {
			continue
		}
		c.order = append(c.order, decl.category)

		for _, g := range decl.guidelines {
			if !c.byID.Add(idNames[g.id], g.id) {
				continue
			}

			e := Entry{
				ID:       g.id,
				Category: decl.category,
				Title:    g.title,
				Summary:  g.summary,
				URL:      decl.category.URL() + "#" + anchor(g.title),
			}
			c.entries[g.id] = e
			c.groups[decl.category] = append(c.groups[decl.category], e)
			c.all = append(c.all, e)
		}
	}

	return c
}

func (c *catalogue) categoryEntries(cat Category) []Entry {
	if !cat.valid() {
		return nil
	}

	return slices.Clone(c.groups[cat])
}

// anchor turns a heading into the fragment id the guidelines book renders for it.
func anchor(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-':
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteByte('-')
		}
	}

	return b.String()
}

// Categories returns all categories in their documented order:
// Naming, Interoperability, Predictability, Flexibility, Type Safety, Dependability,
// Debuggability, Future Proofing, Necessities, Documentation, Macros.
func Categories() []Category {
	return slices.Clone(get().order)
}

// CategoryNames returns names of [Categories] in the same order.
func CategoryNames() []string {
	order := get().order
	res := make([]string, len(order))
	for i, c := range order {
		res[i] = c.String()
	}

	return res
}

// Entries returns guidelines of the category with the given name.
func Entries(category string) ([]Entry, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}

	return c.Entries(), nil
}

// Lookup returns the guideline with the given identifier.
func Lookup(identifier string) (Entry, error) {
	id, err := ParseID(identifier)
	if err != nil {
		return Entry{}, err
	}

	return id.Entry()
}

// AllEntries returns every guideline, ordered by category and then by the order within one.
func AllEntries() []Entry {
	return slices.Clone(get().all)
}
