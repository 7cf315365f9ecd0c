package apiguide

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/sirkon/deepequal"
)

func TestCategoriesOrder(t *testing.T) {
	want := []string{
		"Naming",
		"Interoperability",
		"Predictability",
		"Flexibility",
		"Type Safety",
		"Dependability",
		"Debuggability",
		"Future Proofing",
		"Necessities",
		"Documentation",
		"Macros",
	}

	got := CategoryNames()
	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "category names", want, got)
		t.Fatal("category names mismatch")
	}

	cats := Categories()
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(cats))
	}
	for i, c := range cats {
		if c.String() != want[i] {
			t.Errorf("category %d: got %q, want %q", i, c, want[i])
		}
	}
}

func TestEntriesOfEveryCategory(t *testing.T) {
	for _, name := range CategoryNames() {
		t.Run(name, func(t *testing.T) {
			entries, err := Entries(name)
			if err != nil {
				t.Fatalf("entries of %q: %s", name, err)
			}
			if len(entries) == 0 {
				t.Fatalf("category %q has no guidelines", name)
			}

			for _, e := range entries {
				if e.Category.String() != name {
					t.Errorf("%s: got category %q, want %q", e.ID, e.Category, name)
				}
				if e.Summary == "" {
					t.Errorf("%s: empty summary", e.ID)
				}
				if e.Title == "" {
					t.Errorf("%s: empty title", e.ID)
				}
			}
		})
	}
}

func TestLookupEveryEntry(t *testing.T) {
	for _, e := range AllEntries() {
		got, err := Lookup(e.ID.String())
		if err != nil {
			t.Fatalf("lookup %s: %s", e.ID, err)
		}
		if got != e {
			deepequal.SideBySide(t, "entry", e, got)
			t.Fatalf("lookup %s returned a different entry", e.ID)
		}
	}
}

func TestUniqueness(t *testing.T) {
	all := AllEntries()
	if len(all) != int(idEnd)-1 {
		t.Fatalf("expected every one of %d identifiers to be declared, got %d entries", int(idEnd)-1, len(all))
	}

	ids := map[string]Category{}
	for _, e := range all {
		if prev, ok := ids[e.ID.String()]; ok {
			t.Errorf("identifier %s is declared in both %s and %s", e.ID, prev, e.Category)
		}
		ids[e.ID.String()] = e.Category
	}

	names := map[string]struct{}{}
	for _, name := range CategoryNames() {
		if _, ok := names[name]; ok {
			t.Errorf("category name %q is duplicated", name)
		}
		names[name] = struct{}{}
	}

	for id := idInvalid + 1; id < idEnd; id++ {
		if idNames[id] == "" {
			t.Errorf("ID(%d) has no identifier", int(id))
		}
	}
}

func TestAllEntriesOrder(t *testing.T) {
	var want []Entry
	for _, c := range Categories() {
		want = append(want, c.Entries()...)
	}

	got := AllEntries()
	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "entries", want, got)
		t.Fatal("all entries must follow category order")
	}
}

func TestIdempotence(t *testing.T) {
	if !reflect.DeepEqual(CategoryNames(), CategoryNames()) {
		t.Error("category names differ between calls")
	}
	if !reflect.DeepEqual(AllEntries(), AllEntries()) {
		t.Error("all entries differ between calls")
	}

	first, err := Entries("Naming")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Entries("Naming")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		deepequal.SideBySide(t, "naming", first, second)
		t.Error("entries differ between calls")
	}

	a, errA := Lookup("C_DEBUG")
	b, errB := Lookup("C_DEBUG")
	if errA != nil || errB != nil || a != b {
		t.Errorf("lookup differs between calls: %v (%v) vs %v (%v)", a, errA, b, errB)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	all := AllEntries()
	all[0].Summary = "changed"
	if AllEntries()[0].Summary == "changed" {
		t.Fatal("AllEntries() returned shared slice, expected copy")
	}

	naming := Naming.Entries()
	naming[0].ID = CDebug
	if Naming.Entries()[0].ID != CCase {
		t.Fatal("Entries() returned shared slice, expected copy")
	}

	cats := Categories()
	cats[0] = Macros
	if Categories()[0] != Naming {
		t.Fatal("Categories() returned shared slice, expected copy")
	}
}

func TestNotFound(t *testing.T) {
	tests := []struct {
		name string
		call func() error
		kind NotFoundKind
		key  string
	}{
		{
			name: "unknown identifier",
			call: func() error {
				_, err := Lookup("NOT_A_REAL_ID")
				return err
			},
			kind: NotFoundGuideline,
			key:  "NOT_A_REAL_ID",
		},
		{
			name: "empty identifier",
			call: func() error {
				_, err := Lookup("")
				return err
			},
			kind: NotFoundGuideline,
			key:  "",
		},
		{
			name: "lowercase identifier",
			call: func() error {
				_, err := Lookup("c_case")
				return err
			},
			kind: NotFoundGuideline,
			key:  "c_case",
		},
		{
			name: "unknown category",
			call: func() error {
				_, err := Entries("NotACategory")
				return err
			},
			kind: NotFoundCategory,
			key:  "NotACategory",
		},
		{
			name: "category page slug",
			call: func() error {
				_, err := Entries("type-safety")
				return err
			},
			kind: NotFoundCategory,
			key:  "type-safety",
		},
		{
			name: "invalid id",
			call: func() error {
				_, err := ID(0).Entry()
				return err
			},
			kind: NotFoundGuideline,
			key:  "guideline-unknown(0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("error was expected")
			}
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("error %q must match ErrNotFound", err)
			}

			var nf *NotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("error %q is not a NotFoundError", err)
			}
			if nf.Kind != tt.kind || nf.Name != tt.key {
				t.Errorf("got %s %q, want %s %q", nf.Kind, nf.Name, tt.kind, tt.key)
			}
		})
	}
}

func TestNamingOrder(t *testing.T) {
	entries, err := Entries("Naming")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"C_CASE", "C_CONV", "C_GETTER", "C_ITER", "C_ITER_TY", "C_FEATURE", "C_WORD_ORDER"}
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.ID.String()
	}

	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "naming", want, got)
		t.Fatal("naming guidelines mismatch")
	}
}

func TestLookupSmartPtr(t *testing.T) {
	e, err := Lookup("C_SMART_PTR")
	if err != nil {
		t.Fatal(err)
	}

	if e.ID != CSmartPtr {
		t.Errorf("got %s, want C_SMART_PTR", e.ID)
	}
	if e.Category != Predictability {
		t.Errorf("got category %s, want Predictability", e.Category)
	}
	if e.Summary == "" {
		t.Error("summary must not be empty")
	}
}

func TestLookupPublishedSpelling(t *testing.T) {
	e, err := Lookup("C-SMART-PTR")
	if err != nil {
		t.Fatal(err)
	}
	if e.ID != CSmartPtr {
		t.Errorf("got %s, want C_SMART_PTR", e.ID)
	}

	if got := CRWValue.Published(); got != "C-RW-VALUE" {
		t.Errorf("got %q, want C-RW-VALUE", got)
	}
}

func TestURLs(t *testing.T) {
	tests := []struct {
		id  ID
		url string
	}{
		{
			id:  CCase,
			url: "https://rust-lang.github.io/api-guidelines/naming.html#casing-conforms-to-rfc-430-c-case",
		},
		{
			id:  CConv,
			url: "https://rust-lang.github.io/api-guidelines/naming.html#ad-hoc-conversions-follow-as_-to_-into_-conventions-c-conv",
		},
		{
			id:  CIter,
			url: "https://rust-lang.github.io/api-guidelines/naming.html#methods-on-collections-that-produce-iterators-follow-iter-iter_mut-into_iter-c-iter",
		},
		{
			id:  CSerde,
			url: "https://rust-lang.github.io/api-guidelines/interoperability.html#data-structures-implement-serdes-serialize-deserialize-c-serde",
		},
		{
			id:  CRWValue,
			url: "https://rust-lang.github.io/api-guidelines/interoperability.html#generic-readerwriter-functions-take-r-read-and-w-write-by-value-c-rw-value",
		},
		{
			id:  CNewtype,
			url: "https://rust-lang.github.io/api-guidelines/type-safety.html#newtypes-provide-static-distinctions-c-newtype",
		},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			e, err := tt.id.Entry()
			if err != nil {
				t.Fatal(err)
			}
			if e.URL != tt.url {
				t.Errorf("got %s, want %s", e.URL, tt.url)
			}
		})
	}
}

func TestConcurrentReaders(t *testing.T) {
	const n = 64
	want := AllEntries()

	var wg sync.WaitGroup
	errs := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e := want[i%len(want)]
			got, err := Lookup(e.ID.String())
			if err != nil || got != e {
				errs <- e.ID.String()
				return
			}
			if !reflect.DeepEqual(AllEntries(), want) {
				errs <- "all entries"
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("concurrent read mismatch on %s", e)
	}
}
