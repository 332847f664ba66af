package healthcare

import (
	"context"

	"github.com/RgDivine/recordkeep/alog"
	"github.com/RgDivine/recordkeep/app"
)

func NewPrescriptionsForPatientQueryHandler(
	logger alog.Logger,
	index *PrescriptionIndex,
) app.Query[PrescriptionsForPatientQuery, []Prescription] {
	return app.NewLoggedQuery(logger,
		app.NewValidatedQuery[PrescriptionsForPatientQuery, []Prescription](nil, &prescriptionsForPatientQueryHandler{index: index}),
	)
}

type prescriptionsForPatientQueryHandler struct {
	index *PrescriptionIndex
}

type PrescriptionsForPatientQuery struct {
	PatientID PatientID `validate:"required"`
}

func (h *prescriptionsForPatientQueryHandler) H(
	_ context.Context,
	query PrescriptionsForPatientQuery,
) ([]Prescription, error) {
	return h.index.For(query.PatientID), nil
}
