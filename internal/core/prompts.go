package core

// prompts.go holds every fixed sentence and template that ends up in the
// prompt.  Keeping them together makes the wording easy to tweak without
// touching the extraction or assembly code.

const (
	// SystemPrompt tells the model who it is writing for and what the note
	// must contain.  It never changes between runs.
	SystemPrompt = `You are a helpful veterinary assistant.
You will be provided with a summary of a veterinary consultation.
Your task is to generate a clear and concise discharge note TEXT for the pet owner.
Consider the following criteria:
- The note should be easy to understand for a non-medical person.
- Address the pet owner directly (e.g., "Regarding your pet, [PetName], ...").
- Summarize key findings, treatments performed (if any), and any medications
to administer at home (with dosage and frequency if provided).
- If no specific medications are listed for home care, state that.
- Include important next steps, follow-up advice, or things to monitor.
- Make the tone caring and supportive.
- Avoid using medical jargon or complex terminology.
- Ensure the note is well-structured and easy to read.
- If there are any specific instructions or observations from the vet,
include them in the note.
Provide the note in a friendly and professional manner.
Output ONLY the discharge note text, without any additional comments or explanations.`

	// userPromptTemplate wraps the consultation summary.
	userPromptTemplate = `Please generate the text for a discharge note based on the following consultation information:
---
%s
---
Remember to focus on what the pet owner needs to know and do.`

	// summaryTemplate linearizes the extracted record.  Arguments in order:
	// name, species, date, reason, clinical notes, diagnostics, treatments.
	summaryTemplate = `Patient Name: %s
Species: %s
Consultation Date: %s
Reason for Visit: %s

%s

--- Diagnostics Summary ---
%s
--- End Diagnostics Summary ---

--- Treatment Summary ---
%s
--- End Treatment Summary ---

Other Instructions/Observations from Vet: (Relying on LLM to infer general advice based on the provided data.)`
)

// Section wording.
const (
	clinicalNotesPrefix = "Clinical observations: "
	noClinicalNotes     = "No specific clinical notes recorded for this visit."

	diagnosticsPrefix = "Diagnostics performed: "
	noDiagnostics     = "Diagnostics performed: No diagnostics were recorded for this visit."

	proceduresPrefix = "Procedures performed: "
	medicinesPrefix  = "Medicines administered during the visit: "

	prescriptionsPrefix = "Medications prescribed for home care: "
	prescriptionsSuffix = " Please follow the specific instructions provided for administration."
	noPrescriptions     = "Medications prescribed for home care: No new medications were prescribed for you to take home during this visit. If your pet is on existing medication, please continue as previously directed."

	foodsPrefix    = "Specific foods recommended/dispensed: "
	suppliesPrefix = "Supplies provided: "

	noTreatments = "No specific treatments, medications, or supplies were recorded for this visit."
)
