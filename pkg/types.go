package pkg

// Patient identifies the animal the consultation was about.  Both fields are
// always populated after extraction; missing values carry their defaults.
type Patient struct {
	Name    string `json:"name"`
	Species string `json:"species"`
}

// NamedItem is the shape shared by diagnostics, procedures, medicines,
// prescriptions, foods and supplies.  Named reports whether the source item
// carried a non-empty name; when it did not, Name holds the per-category
// fallback such as "Unnamed Procedure".
type NamedItem struct {
	Name  string `json:"name"`
	Named bool   `json:"-"`
}

// TreatmentItems groups everything done or handed out during the visit.
type TreatmentItems struct {
	Procedures    []NamedItem `json:"procedures"`
	Medicines     []NamedItem `json:"medicines"`
	Prescriptions []NamedItem `json:"prescriptions"`
	Foods         []NamedItem `json:"foods"`
	Supplies      []NamedItem `json:"supplies"`
}

// Consultation holds the visit metadata and clinical content.  ClinicalNotes
// only contains notes with non-empty text, in their original order.
type Consultation struct {
	Date           string         `json:"date"`
	Reason         string         `json:"reason"`
	ClinicalNotes  []string       `json:"clinical_notes"`
	Diagnostics    []NamedItem    `json:"diagnostics"`
	TreatmentItems TreatmentItems `json:"treatment_items"`
}

// ConsultationRecord is the typed, fully defaulted view of one input
// document.
type ConsultationRecord struct {
	Patient      Patient      `json:"patient"`
	Consultation Consultation `json:"consultation"`
}

// PromptPair is the two-part prompt sent to the completion service.
type PromptPair struct {
	SystemInstruction string
	UserContent       string
}

// DischargeNoteResponse is the single JSON object written to stdout on
// success.
type DischargeNoteResponse struct {
	DischargeNote string `json:"discharge_note"`
}
