package core

import (
	"encoding/json"
	"strconv"

	"vet-discharge-notes/pkg"
)

// Defaults used when a field is absent or null.
const (
	DefaultPatientName    = "Your pet"
	DefaultPatientSpecies = "the species"
	DefaultVisitDate      = "the recent visit"
	DefaultVisitReason    = "the consultation"

	unnamedDiagnostic   = "Unnamed Diagnostic"
	unnamedProcedure    = "Unnamed Procedure"
	unnamedMedicine     = "Unnamed Medicine"
	unnamedPrescription = "Unnamed Prescription"
	unnamedFood         = "Unnamed Food Item"
	unnamedSupply       = "Unnamed Supply"
)

// fields is an optional record.  Anything that is not a JSON object,
// including nil, reads as an empty mapping, so every accessor is total.
type fields map[string]any

func asFields(v any) fields {
	m, _ := v.(map[string]any)
	return fields(m)
}

// record returns the sub-record under key.
func (f fields) record(key string) fields {
	return asFields(f[key])
}

// list returns the sequence under key.  A missing or non-array value is an
// empty sequence; elements that are not objects become empty records.
func (f fields) list(key string) []fields {
	raw, _ := f[key].([]any)
	out := make([]fields, 0, len(raw))
	for _, v := range raw {
		out = append(out, asFields(v))
	}
	return out
}

// lookup is the one defaulting accessor.  It returns the display form of the
// value under key, or def when the key is absent or null.  The boolean
// reports whether a value was present.
func (f fields) lookup(key, def string) (string, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return def, false
	}
	return display(v), true
}

func (f fields) str(key, def string) string {
	s, _ := f.lookup(key, def)
	return s
}

// display renders a decoded JSON value as text.  Composite values fall back
// to their JSON encoding.
func display(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// truthy reports whether a decoded value counts as a real note or name.
// false, zero numbers and empty strings, arrays or objects do not.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

func namedItems(items []fields, unnamed string) []pkg.NamedItem {
	out := make([]pkg.NamedItem, 0, len(items))
	for _, it := range items {
		name, _ := it.lookup("name", unnamed)
		out = append(out, pkg.NamedItem{
			Name:  name,
			Named: truthy(it["name"]) && name != "",
		})
	}
	return out
}

// Extract turns a loosely typed consultation document into a fully defaulted
// record.  It never fails: absent, null or oddly shaped parts are replaced by
// their defaults.
func Extract(doc any) pkg.ConsultationRecord {
	root := asFields(doc)
	patient := root.record("patient")
	consult := root.record("consultation")
	treatment := consult.record("treatment_items")

	var notes []string
	for _, n := range consult.list("clinical_notes") {
		if !truthy(n["note"]) {
			continue
		}
		if text := n.str("note", ""); text != "" {
			notes = append(notes, text)
		}
	}

	return pkg.ConsultationRecord{
		Patient: pkg.Patient{
			Name:    patient.str("name", DefaultPatientName),
			Species: patient.str("species", DefaultPatientSpecies),
		},
		Consultation: pkg.Consultation{
			Date:          consult.str("date", DefaultVisitDate),
			Reason:        consult.str("reason", DefaultVisitReason),
			ClinicalNotes: notes,
			Diagnostics:   namedItems(consult.list("diagnostics"), unnamedDiagnostic),
			TreatmentItems: pkg.TreatmentItems{
				Procedures:    namedItems(treatment.list("procedures"), unnamedProcedure),
				Medicines:     namedItems(treatment.list("medicines"), unnamedMedicine),
				Prescriptions: namedItems(treatment.list("prescriptions"), unnamedPrescription),
				Foods:         namedItems(treatment.list("foods"), unnamedFood),
				Supplies:      namedItems(treatment.list("supplies"), unnamedSupply),
			},
		},
	}
}
