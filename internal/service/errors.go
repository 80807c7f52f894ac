package service

import "errors"

// Domain errors surfaced to the HTTP layer. Handlers map each one to a
// distinct client-facing status and code; validation failures travel as
// *model.ValidationError instead.
var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrUnsupportedRegion = errors.New("we are not yet available in the patient's city")
	ErrNoDoctorAvailable = errors.New("no doctor available for the patient's city and speciality")
)
