// Package apiguide is a static catalogue of the Rust API Guidelines checklist.
//
// Every guideline has a stable identifier (C_CASE, C_SMART_PTR, …) and belongs to exactly
// one category. Linters, documentation generators and similar tools reference guidelines
// symbolically through this package instead of spelling identifiers by hand.
//
// # Structure
//
// Categories come in a fixed order:
//
//	Naming, Interoperability, Predictability, Flexibility, Type Safety, Dependability,
//	Debuggability, Future Proofing, Necessities, Documentation, Macros
//
// Guidelines within a category keep the order they were declared in.
//
// Example:
//
//	apiguide.CSmartPtr.String()     → "C_SMART_PTR"
//	apiguide.CSmartPtr.Published()  → "C-SMART-PTR"
//	apiguide.Lookup("C_SMART_PTR")  → Entry{Category: Predictability, …}
//
// # Usage
//
// Typical use in an analyzer:
//
//	if isInherentMethodOnSmartPointer(fn) {
//	    apiguide.Report(pass, fn, apiguide.CSmartPtr, "method %s shadows target methods", fn.Name)
//	}
//
// Tools that cannot link this package read the YAML export produced by [WriteYAML].
//
// # Notes
//
//   - The catalogue is built once per process and is read-only after that, so it can be
//     shared by any number of goroutines without locking.
//   - Identifiers are stable; never renumber or reorder existing ones.
//   - The only error is [NotFoundError], returned for unknown categories and identifiers.
//
// The package does not parse source code and does not check conformance. It is metadata only.
package apiguide
