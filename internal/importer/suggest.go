package importer

import (
	"strings"
	"unicode"

	"github.com/alexanderramin/dmaicboard/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldLabel lowercases s and strips combining marks: "DEFINICIÓN" -> "definicion".
func foldLabel(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// suggestPhase returns the known phase an unknown label differs from only
// by case or accents.
func suggestPhase(label string) (domain.Phase, bool) {
	folded := foldLabel(strings.TrimSpace(label))
	if folded == "" {
		return "", false
	}
	for _, p := range domain.KnownPhases() {
		if foldLabel(string(p)) == folded {
			return p, true
		}
	}
	return "", false
}
