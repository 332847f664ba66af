// Package healthcare is a demo application tracking patients and their
// prescriptions.
//
// Patients live in a keyed repository. Prescriptions are append only and
// looked up through a derived index grouping them by patient.
package healthcare

import "time"

type (
	PatientID      int
	PrescriptionID int

	Patient struct {
		ID     PatientID
		Name   string
		Age    int
		Gender string
	}

	Prescription struct {
		ID             PrescriptionID
		PatientID      PatientID
		MedicationName string
		DateIssued     time.Time
	}
)
