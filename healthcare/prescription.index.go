package healthcare

import (
	"context"
	"fmt"

	"github.com/RgDivine/recordkeep/repository"
)

func NewPrescriptionIndex(repo *repository.ListRepository[Prescription]) *PrescriptionIndex {
	return &PrescriptionIndex{
		repo:      repo,
		byPatient: map[PatientID][]Prescription{},
	}
}

// PrescriptionIndex groups prescriptions by patient.
//
// It is a read cache derived from the prescription repository and not
// authoritative itself. Any mutation of the prescriptions invalidates it,
// there is no incremental maintenance: call Rebuild to refresh.
type PrescriptionIndex struct {
	repo      *repository.ListRepository[Prescription]
	byPatient map[PatientID][]Prescription
}

// Rebuild scans all prescriptions and replaces the whole index,
// so rebuilding is idempotent.
func (i *PrescriptionIndex) Rebuild(ctx context.Context) error {
	prescriptions, err := i.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("could not load prescriptions: %w", err)
	}

	byPatient := make(map[PatientID][]Prescription)
	for _, p := range prescriptions {
		byPatient[p.PatientID] = append(byPatient[p.PatientID], p)
	}

	i.byPatient = byPatient

	return nil
}

// For returns the prescriptions of the patient in insertion order.
// Unknown patients get an empty slice, absence is a normal outcome here.
func (i *PrescriptionIndex) For(patientID PatientID) []Prescription {
	prescriptions, ok := i.byPatient[patientID]
	if !ok {
		return []Prescription{}
	}

	return prescriptions
}
