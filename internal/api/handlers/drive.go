package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/headphone-power/internal/calculator"
	"github.com/RMahshie/headphone-power/internal/config"
	"github.com/RMahshie/headphone-power/pkg/models"
)

// splStep is the target SPL slider increment in dB
const splStep = 0.1

// DriveHandler handles drive calculation HTTP requests
type DriveHandler struct {
	calc     calculator.Service
	defaults config.DefaultsConfig
}

// NewDriveHandler creates a new drive handler
func NewDriveHandler(calc calculator.Service, defaults config.DefaultsConfig) *DriveHandler {
	return &DriveHandler{
		calc:     calc,
		defaults: defaults,
	}
}

// CalculateDrive computes the voltage, current and power needed to reach the target SPL
func (h *DriveHandler) CalculateDrive(ctx context.Context, req *models.CalculateDriveRequest) (*models.CalculateDriveResponse, error) {
	calculationID := uuid.New().String()
	logger := log.With().Str("calculationID", calculationID).Logger()
	ctx = logger.WithContext(ctx)

	unit, err := calculator.ParseUnit(req.Body.Unit)
	if err != nil {
		logger.Warn().Err(err).Msg("Unsupported sensitivity unit")
		return nil, huma.Error422UnprocessableEntity(calculator.InvalidInputMessage, err)
	}

	in := calculator.Input{
		Sensitivity: req.Body.Sensitivity,
		Impedance:   req.Body.Impedance,
		Unit:        unit,
		TargetSPL:   req.Body.TargetSPL,
	}
	logger.Debug().
		Float64("sensitivity", in.Sensitivity).
		Float64("impedance", in.Impedance).
		Str("unit", in.Unit.String()).
		Float64("targetSPL", in.TargetSPL).
		Msg("Calculating drive requirements")

	res, err := h.calc.Calculate(ctx, in)
	if err != nil {
		if errors.Is(err, calculator.ErrInvalidInput) {
			return nil, huma.Error422UnprocessableEntity(calculator.InvalidInputMessage, err)
		}
		return nil, huma.Error500InternalServerError("Failed to calculate drive requirements", err)
	}

	display := res.Display()
	return &models.CalculateDriveResponse{
		Body: models.CalculateDriveResponseBody{
			ID:               calculationID,
			VoltageVolts:     res.VoltageVolts,
			CurrentMilliamps: res.CurrentMilliamps,
			PowerMilliwatts:  res.PowerMilliwatts,
			PowerWatts:       res.PowerWatts,
			SensitivityDbV:   res.SensitivityDbV,
			SensitivityDbMw:  res.SensitivityDbMw,
			LoudnessLabel:    string(res.Loudness),
			ProgressFraction: res.ProgressFraction,
			Display: models.DriveDisplay{
				Voltage:         display.Voltage,
				Current:         display.Current,
				Power:           display.Power,
				TargetSPL:       display.TargetSPL,
				SensitivityDbV:  display.SensitivityDbV,
				SensitivityDbMw: display.SensitivityDbMw,
			},
		},
	}, nil
}

// GetDefaults returns the initial form values and the target SPL range
func (h *DriveHandler) GetDefaults(ctx context.Context, _ *struct{}) (*models.DriveDefaultsResponse, error) {
	units := make([]string, 0, len(calculator.Units))
	for _, u := range calculator.Units {
		units = append(units, u.String())
	}

	return &models.DriveDefaultsResponse{
		Body: models.DriveDefaultsResponseBody{
			Sensitivity: h.defaults.Sensitivity,
			Impedance:   h.defaults.Impedance,
			Unit:        h.defaults.Unit.String(),
			Units:       units,
			TargetSPL:   h.defaults.TargetSPL,
			MinSPL:      calculator.MinSPL,
			MaxSPL:      calculator.MaxSPL,
			SPLStep:     splStep,
		},
	}, nil
}
