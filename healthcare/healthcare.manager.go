package healthcare

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"

	"github.com/RgDivine/recordkeep/alog"
	"github.com/RgDivine/recordkeep/app"
	"github.com/RgDivine/recordkeep/repository"
)

// NewManager initialises the healthcare demo. The given repository options
// apply to the patient and the prescription repository.
func NewManager(logger alog.Logger, out io.Writer, opts ...repository.Option) *Manager {
	patients := repository.NewMemoryRepository[Patient, PatientID](opts...)
	prescriptions := repository.NewListRepository[Prescription](opts...)
	index := NewPrescriptionIndex(prescriptions)

	return &Manager{
		logger:        logger,
		out:           out,
		patients:      patients,
		prescriptions: prescriptions,
		index:         index,

		registerPatient:         NewRegisterPatientCommandHandler(logger, patients),
		prescriptionsForPatient: NewPrescriptionsForPatientQueryHandler(logger, index),
	}
}

// Manager orchestrates the healthcare demo.
// Failures of the demo operations are logged and execution continues,
// so a single bad record never aborts the whole run.
type Manager struct {
	logger alog.Logger
	out    io.Writer

	patients      *repository.MemoryRepository[Patient, PatientID]
	prescriptions *repository.ListRepository[Prescription]
	index         *PrescriptionIndex

	registerPatient         app.Command[RegisterPatientCommand]
	prescriptionsForPatient app.Query[PrescriptionsForPatientQuery, []Prescription]
}

// Seed populates the repositories with sample records and builds the
// prescription index. Duplicate patient ids are logged and skipped.
func (m *Manager) Seed(ctx context.Context) {
	patients := []RegisterPatientCommand{
		{ID: 1, Name: "Ada Krause", Age: 54, Gender: "female"},
		{ID: 2, Name: "Ben Okafor", Age: 37, Gender: "male"},
		{ID: 3, Name: "Carla Mota", Age: 61, Gender: "female"},
	}

	issued := time.Now().AddDate(0, 0, -14)
	prescriptions := []Prescription{
		{ID: 101, PatientID: 1, MedicationName: "Ibuprofen", DateIssued: issued},
		{ID: 102, PatientID: 2, MedicationName: "Metformin", DateIssued: issued.AddDate(0, 0, 2)},
		{ID: 103, PatientID: 1, MedicationName: "Lisinopril", DateIssued: issued.AddDate(0, 0, 5)},
		{ID: 104, PatientID: 3, MedicationName: "Amoxicillin", DateIssued: issued.AddDate(0, 0, 7)},
		{ID: 105, PatientID: 2, MedicationName: "Atorvastatin", DateIssued: issued.AddDate(0, 0, 9)},
	}

	for _, cmd := range patients {
		err := m.registerPatient.H(ctx, cmd)
		if err != nil {
			m.logger.InfoContext(ctx, "could not seed patient",
				slog.Int("id", int(cmd.ID)), slog.String("error", err.Error()))
		}
	}

	for _, p := range prescriptions {
		err := m.prescriptions.Add(ctx, p)
		if err != nil {
			m.logger.InfoContext(ctx, "could not seed prescription",
				slog.Int("id", int(p.ID)), slog.String("error", err.Error()))
		}
	}

	err := m.BuildPrescriptionIndex(ctx)
	if err != nil {
		m.logger.InfoContext(ctx, "could not build prescription index", slog.String("error", err.Error()))
	}
}

// BuildPrescriptionIndex regenerates the prescription index from scratch.
func (m *Manager) BuildPrescriptionIndex(ctx context.Context) error {
	return m.index.Rebuild(ctx)
}

// PrescriptionsFor returns the prescriptions of the patient in insertion
// order. Patients without prescriptions get an empty slice.
func (m *Manager) PrescriptionsFor(ctx context.Context, patientID PatientID) []Prescription {
	prescriptions, err := m.prescriptionsForPatient.H(ctx, PrescriptionsForPatientQuery{PatientID: patientID})
	if err != nil {
		m.logger.InfoContext(ctx, "could not get prescriptions",
			slog.Int("patient_id", int(patientID)), slog.String("error", err.Error()))

		return []Prescription{}
	}

	return prescriptions
}

// PrintAllPatients writes a human readable report of all patients and their
// prescriptions to the manager's output.
func (m *Manager) PrintAllPatients(ctx context.Context) {
	heading := color.New(color.FgBlue, color.Bold).FprintlnFunc()

	heading(m.out, "Patients")

	patients, err := m.patients.All(ctx)
	if err != nil {
		m.logger.InfoContext(ctx, "could not list patients", slog.String("error", err.Error()))
	}

	for _, patient := range patients {
		fmt.Fprintf(m.out, "  [%d] %s (%d, %s)\n", patient.ID, patient.Name, patient.Age, patient.Gender)

		for _, p := range m.PrescriptionsFor(ctx, patient.ID) {
			fmt.Fprintf(m.out, "      %d: %s issued %s\n", p.ID, p.MedicationName, p.DateIssued.Format(time.DateOnly))
		}
	}
}

// PrintPrescriptionsFor writes the prescriptions of one patient to the
// manager's output.
func (m *Manager) PrintPrescriptionsFor(ctx context.Context, patientID PatientID) {
	heading := color.New(color.FgBlue, color.Bold).FprintfFunc()

	heading(m.out, "Prescriptions of patient %d\n", patientID)

	for _, p := range m.PrescriptionsFor(ctx, patientID) {
		fmt.Fprintf(m.out, "  %d: %s issued %s\n", p.ID, p.MedicationName, p.DateIssued.Format(time.DateOnly))
	}
}

// RunDemoErrorCases exercises the failure paths on purpose: a duplicate
// patient registration and a lookup of a missing patient. Each failure is
// caught right at the call site and reported, none of them stop the demo.
func (m *Manager) RunDemoErrorCases(ctx context.Context) {
	failure := color.New(color.FgRed, color.Bold).FprintfFunc()

	err := m.registerPatient.H(ctx, RegisterPatientCommand{ID: 1, Name: "Ada Krause", Age: 54, Gender: "female"})
	if err != nil {
		m.logger.InfoContext(ctx, "registering duplicate patient failed", slog.String("error", err.Error()))
		failure(m.out, "could not register patient 1 again: %v\n", err)
	}

	_, err = m.patients.FindByID(ctx, 99)
	if err != nil {
		m.logger.InfoContext(ctx, "looking up missing patient failed", slog.String("error", err.Error()))
		failure(m.out, "could not find patient 99: %v\n", err)
	}
}

// Run performs the complete healthcare demo:
// seed, report, a prescription lookup, and the deliberate error cases.
func (m *Manager) Run(ctx context.Context) error {
	m.Seed(ctx)
	m.PrintAllPatients(ctx)

	prescriptions := m.PrescriptionsFor(ctx, 1)
	fmt.Fprintf(m.out, "patient 1 has %d prescriptions\n", len(prescriptions))
	m.PrintPrescriptionsFor(ctx, 1)

	m.RunDemoErrorCases(ctx)

	return nil
}
