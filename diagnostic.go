package apiguide

import (
	"fmt"

	"golang.org/x/tools/go/analysis"
)

// Diagnostic builds an analysis diagnostic tagged with the guideline. Category of the diagnostic
// is set to the identifier and URL points to the guideline, so drivers can filter and link findings.
//
// The message is "<ID>: <text>", where text is the formatted message or the guideline title
// if the format is empty.
func Diagnostic(rng analysis.Range, id ID, format string, args ...any) analysis.Diagnostic {
	text := fmt.Sprintf(format, args...)
	entry, err := id.Entry()
	if format == "" {
		if err != nil {
			text = "unknown guideline"
		} else {
			text = entry.Title
		}
	}

	return analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: id.String(),
		Message:  id.String() + ": " + text,
		URL:      entry.URL,
	}
}

// Report sends the [Diagnostic] for the guideline to the pass.
func Report(pass *analysis.Pass, rng analysis.Range, id ID, format string, args ...any) {
	pass.Report(Diagnostic(rng, id, format, args...))
}
