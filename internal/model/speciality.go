package model

// Speciality is a medical practice area a doctor is categorized under.
// The set is closed; unknown values are rejected at validation time.
type Speciality string

const (
	SpecialityOrthopaedic Speciality = "ORTHOPAEDIC"
	SpecialityGynecology  Speciality = "GYNECOLOGY"
	SpecialityDermatology Speciality = "DERMATOLOGY"
	SpecialityENT         Speciality = "ENT"
)

// Symptom is a patient-reported condition. Every symptom implies exactly
// one speciality via the static table below.
type Symptom string

const (
	SymptomArthritis      Symptom = "ARTHRITIS"
	SymptomBackPain       Symptom = "BACK_PAIN"
	SymptomTissueInjuries Symptom = "TISSUE_INJURIES"
	SymptomDysmenorrhea   Symptom = "DYSMENORRHEA"
	SymptomSkinInfection  Symptom = "SKIN_INFECTION"
	SymptomSkinBurn       Symptom = "SKIN_BURN"
	SymptomEarPain        Symptom = "EAR_PAIN"
)

// symptomSpecialities is the static symptom to speciality table. It is
// built once at process start and never persisted or mutated.
var symptomSpecialities = map[Symptom]Speciality{
	SymptomArthritis:      SpecialityOrthopaedic,
	SymptomBackPain:       SpecialityOrthopaedic,
	SymptomTissueInjuries: SpecialityOrthopaedic,
	SymptomDysmenorrhea:   SpecialityGynecology,
	SymptomSkinInfection:  SpecialityDermatology,
	SymptomSkinBurn:       SpecialityDermatology,
	SymptomEarPain:        SpecialityENT,
}

// Valid reports whether s is one of the known specialities.
func (s Speciality) Valid() bool {
	switch s {
	case SpecialityOrthopaedic, SpecialityGynecology, SpecialityDermatology, SpecialityENT:
		return true
	}
	return false
}

// Valid reports whether s is one of the known symptoms.
func (s Symptom) Valid() bool {
	_, ok := symptomSpecialities[s]
	return ok
}

// Speciality returns the speciality implied by the symptom. The second
// return value is false for unknown symptoms.
func (s Symptom) Speciality() (Speciality, bool) {
	sp, ok := symptomSpecialities[s]
	return sp, ok
}
