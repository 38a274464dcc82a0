package calculator

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// Service runs calculations for the API and CLI front ends
type Service interface {
	Calculate(ctx context.Context, in Input) (Result, error)
}

type service struct{}

// NewService creates a calculator service
func NewService() Service {
	return &service{}
}

func (s *service) Calculate(ctx context.Context, in Input) (Result, error) {
	res, err := Calculate(in)
	if err != nil {
		event := log.Ctx(ctx).Error()
		if errors.Is(err, ErrInvalidInput) {
			event = log.Ctx(ctx).Warn()
		}
		event.Err(err).
			Float64("sensitivity", in.Sensitivity).
			Float64("impedance", in.Impedance).
			Str("unit", in.Unit.String()).
			Float64("targetSPL", in.TargetSPL).
			Msg("Calculation rejected")
		return Result{}, err
	}

	log.Ctx(ctx).Debug().
		Float64("sensitivityDbMw", res.SensitivityDbMw).
		Float64("voltage", res.VoltageVolts).
		Float64("powerMw", res.PowerMilliwatts).
		Str("loudness", string(res.Loudness)).
		Msg("Calculation complete")
	return res, nil
}
