package healthcare

import (
	"context"
	"errors"
	"fmt"

	"github.com/RgDivine/recordkeep/alog"
	"github.com/RgDivine/recordkeep/app"
	"github.com/RgDivine/recordkeep/repository"
)

var ErrRegisterPatientFailed = errors.New("register patient failed")

func NewRegisterPatientCommandHandler(
	logger alog.Logger,
	repo *repository.MemoryRepository[Patient, PatientID],
) app.Command[RegisterPatientCommand] {
	return app.NewLoggedCommand(logger,
		app.NewValidatedCommand[RegisterPatientCommand](nil, &registerPatientCommandHandler{repo: repo}),
	)
}

type registerPatientCommandHandler struct {
	repo *repository.MemoryRepository[Patient, PatientID]
}

type RegisterPatientCommand struct {
	ID     PatientID `validate:"required"`
	Name   string    `validate:"required"`
	Age    int       `validate:"gte=0"`
	Gender string
}

func (h *registerPatientCommandHandler) H(ctx context.Context, cmd RegisterPatientCommand) error {
	patient := Patient{
		ID:     cmd.ID,
		Name:   cmd.Name,
		Age:    cmd.Age,
		Gender: cmd.Gender,
	}

	err := h.repo.Create(ctx, patient)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterPatientFailed, err)
	}

	return nil
}
