package core

import (
	"fmt"

	"vet-discharge-notes/pkg"
)

// BuildSummary linearizes an extracted record into the consultation summary
// the model reads.
func BuildSummary(rec pkg.ConsultationRecord) string {
	c := rec.Consultation
	return fmt.Sprintf(summaryTemplate,
		rec.Patient.Name,
		rec.Patient.Species,
		c.Date,
		c.Reason,
		SummarizeClinicalNotes(c.ClinicalNotes),
		SummarizeDiagnostics(c.Diagnostics),
		SummarizeTreatments(c.TreatmentItems),
	)
}

// AssemblePrompt builds the system and user halves of the prompt.
func AssemblePrompt(rec pkg.ConsultationRecord) pkg.PromptPair {
	return pkg.PromptPair{
		SystemInstruction: SystemPrompt,
		UserContent:       fmt.Sprintf(userPromptTemplate, BuildSummary(rec)),
	}
}
