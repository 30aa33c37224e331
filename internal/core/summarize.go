package core

import (
	"strings"

	"vet-discharge-notes/pkg"
)

// qualifyingNames returns the names of items that carried a non-empty name,
// in order.  Fallback names of unnamed items are never included.
func qualifyingNames(items []pkg.NamedItem) []string {
	var names []string
	for _, it := range items {
		if it.Named && it.Name != "" {
			names = append(names, it.Name)
		}
	}
	return names
}

// listSentence renders "prefix a, b, c." or "" when there is nothing to list.
func listSentence(prefix string, items []pkg.NamedItem) string {
	names := qualifyingNames(items)
	if len(names) == 0 {
		return ""
	}
	return prefix + strings.Join(names, ", ") + "."
}

// SummarizeClinicalNotes joins the clinical notes into one paragraph.
func SummarizeClinicalNotes(notes []string) string {
	var texts []string
	for _, n := range notes {
		if n != "" {
			texts = append(texts, n)
		}
	}
	if len(texts) == 0 {
		return noClinicalNotes
	}
	return clinicalNotesPrefix + strings.Join(texts, "\n")
}

// SummarizeDiagnostics always produces a sentence, falling back to a fixed
// one when nothing qualifies.
func SummarizeDiagnostics(items []pkg.NamedItem) string {
	if s := listSentence(diagnosticsPrefix, items); s != "" {
		return s
	}
	return noDiagnostics
}

// SummarizeProcedures returns "" when no procedure qualifies.
func SummarizeProcedures(items []pkg.NamedItem) string {
	return listSentence(proceduresPrefix, items)
}

// SummarizeMedicines returns "" when no medicine qualifies.
func SummarizeMedicines(items []pkg.NamedItem) string {
	return listSentence(medicinesPrefix, items)
}

// SummarizePrescriptions is never empty; with nothing to list it returns the
// fixed "no new medications" sentence.
func SummarizePrescriptions(items []pkg.NamedItem) string {
	s := listSentence(prescriptionsPrefix, items)
	if s == "" {
		return noPrescriptions
	}
	return s + prescriptionsSuffix
}

// SummarizeFoods returns "" when no food qualifies.
func SummarizeFoods(items []pkg.NamedItem) string {
	return listSentence(foodsPrefix, items)
}

// SummarizeSupplies returns "" when no supply qualifies.
func SummarizeSupplies(items []pkg.NamedItem) string {
	return listSentence(suppliesPrefix, items)
}

// SummarizeTreatments joins the non-empty treatment sections with blank lines
// in a fixed order.
func SummarizeTreatments(t pkg.TreatmentItems) string {
	sections := []string{
		SummarizeProcedures(t.Procedures),
		SummarizeMedicines(t.Medicines),
		SummarizePrescriptions(t.Prescriptions),
		SummarizeFoods(t.Foods),
		SummarizeSupplies(t.Supplies),
	}
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return noTreatments
	}
	return strings.Join(parts, "\n\n")
}
