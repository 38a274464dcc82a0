package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/headphone-power/internal/calculator"
	"github.com/RMahshie/headphone-power/internal/config"
	"github.com/RMahshie/headphone-power/pkg/models"
)

// MockCalculator implements calculator.Service for testing
type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) Calculate(ctx context.Context, in calculator.Input) (calculator.Result, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(calculator.Result), args.Error(1)
}

var testDefaults = config.DefaultsConfig{
	Sensitivity: 100,
	Impedance:   32,
	Unit:        calculator.DBPerMW,
	TargetSPL:   110,
}

func TestCalculateDrive(t *testing.T) {
	tests := []struct {
		name       string
		body       models.CalculateDriveRequestBody
		mockSetup  func(*MockCalculator)
		wantStatus int
		wantError  bool
	}{
		{
			name: "valid dB/mW request",
			body: models.CalculateDriveRequestBody{Sensitivity: 100, Impedance: 32, Unit: "dB/mW", TargetSPL: 110},
			mockSetup: func(m *MockCalculator) {
				m.On("Calculate", mock.Anything, calculator.Input{
					Sensitivity: 100, Impedance: 32, Unit: calculator.DBPerMW, TargetSPL: 110,
				}).Return(calculator.Result{
					SensitivityDbMw:  100,
					SensitivityDbV:   114.9485,
					PowerMilliwatts:  10,
					PowerWatts:       0.01,
					VoltageVolts:     0.5657,
					CurrentAmps:      0.01768,
					CurrentMilliamps: 17.68,
					TargetSPL:        110,
					Loudness:         calculator.LoudnessVeryLoud,
					ProgressFraction: 0.8333,
				}, nil)
			},
		},
		{
			name: "short unit form is normalized by the handler",
			body: models.CalculateDriveRequestBody{Sensitivity: 112, Impedance: 250, Unit: "dbv", TargetSPL: 90},
			mockSetup: func(m *MockCalculator) {
				m.On("Calculate", mock.Anything, mock.MatchedBy(func(in calculator.Input) bool {
					return in.Unit == calculator.DBPerV
				})).Return(calculator.Result{TargetSPL: 90, Loudness: calculator.LoudnessLoud}, nil)
			},
		},
		{
			name:       "unknown unit",
			body:       models.CalculateDriveRequestBody{Sensitivity: 100, Impedance: 32, Unit: "dB/W", TargetSPL: 110},
			mockSetup:  func(m *MockCalculator) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  true,
		},
		{
			name: "calculator rejects input",
			body: models.CalculateDriveRequestBody{Sensitivity: 100, Impedance: 0, Unit: "dB/mW", TargetSPL: 110},
			mockSetup: func(m *MockCalculator) {
				m.On("Calculate", mock.Anything, mock.Anything).
					Return(calculator.Result{}, &calculator.InputError{Field: "impedance", Reason: "must be greater than 0 ohms"})
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  true,
		},
		{
			name: "unexpected calculator failure",
			body: models.CalculateDriveRequestBody{Sensitivity: 100, Impedance: 32, Unit: "dB/mW", TargetSPL: 110},
			mockSetup: func(m *MockCalculator) {
				m.On("Calculate", mock.Anything, mock.Anything).Return(calculator.Result{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCalc := &MockCalculator{}
			tt.mockSetup(mockCalc)

			handler := NewDriveHandler(mockCalc, testDefaults)
			resp, err := handler.CalculateDrive(context.Background(), &models.CalculateDriveRequest{Body: tt.body})

			if tt.wantError {
				require.Error(t, err)
				var statusErr huma.StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, tt.wantStatus, statusErr.GetStatus())
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				_, parseErr := uuid.Parse(resp.Body.ID)
				assert.NoError(t, parseErr)
			}

			mockCalc.AssertExpectations(t)
		})
	}
}

func TestCalculateDrive_InvalidInputMessage(t *testing.T) {
	mockCalc := &MockCalculator{}
	mockCalc.On("Calculate", mock.Anything, mock.Anything).
		Return(calculator.Result{}, calculator.ErrInvalidInput)

	handler := NewDriveHandler(mockCalc, testDefaults)
	_, err := handler.CalculateDrive(context.Background(), &models.CalculateDriveRequest{
		Body: models.CalculateDriveRequestBody{Sensitivity: 100, Impedance: 32, Unit: "dB/mW", TargetSPL: 110},
	})

	var model *huma.ErrorModel
	require.True(t, errors.As(err, &model))
	assert.Equal(t, calculator.InvalidInputMessage, model.Detail)
}

func TestCalculateDrive_ResponseMapping(t *testing.T) {
	handler := NewDriveHandler(calculator.NewService(), testDefaults)

	resp, err := handler.CalculateDrive(context.Background(), &models.CalculateDriveRequest{
		Body: models.CalculateDriveRequestBody{Sensitivity: 100, Impedance: 32, Unit: "dB/mW", TargetSPL: 110},
	})
	require.NoError(t, err)

	body := resp.Body
	assert.InDelta(t, 0.5657, body.VoltageVolts, 5e-5)
	assert.InDelta(t, 17.68, body.CurrentMilliamps, 5e-3)
	assert.InDelta(t, 10.0, body.PowerMilliwatts, 1e-12)
	assert.InDelta(t, 0.01, body.PowerWatts, 1e-15)
	assert.Equal(t, 100.0, body.SensitivityDbMw)
	assert.Equal(t, "Very loud listening level", body.LoudnessLabel)
	assert.Equal(t, "0.5657 V", body.Display.Voltage)
	assert.Equal(t, "17.6777 mA", body.Display.Current)
	assert.Equal(t, "10.0000 mW", body.Display.Power)
	assert.Equal(t, "110.0 dB", body.Display.TargetSPL)
}

func TestCalculateDrive_DisplayTargetFromResult(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		want   string
	}{
		{"slider minimum", 60, "60.0 dB"},
		{"fractional target", 97.3, "97.3 dB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCalc := &MockCalculator{}
			mockCalc.On("Calculate", mock.Anything, mock.Anything).
				Return(calculator.Result{TargetSPL: tt.target, Loudness: calculator.LoudnessLoud}, nil)

			handler := NewDriveHandler(mockCalc, testDefaults)
			resp, err := handler.CalculateDrive(context.Background(), &models.CalculateDriveRequest{
				Body: models.CalculateDriveRequestBody{Sensitivity: 100, Impedance: 32, Unit: "dB/mW", TargetSPL: tt.target},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Body.Display.TargetSPL)
			mockCalc.AssertExpectations(t)
		})
	}
}

func TestGetDefaults(t *testing.T) {
	handler := NewDriveHandler(&MockCalculator{}, testDefaults)

	resp, err := handler.GetDefaults(context.Background(), &struct{}{})
	require.NoError(t, err)

	assert.Equal(t, 100.0, resp.Body.Sensitivity)
	assert.Equal(t, 32.0, resp.Body.Impedance)
	assert.Equal(t, "dB/mW", resp.Body.Unit)
	assert.Equal(t, []string{"dB/mW", "dB/V"}, resp.Body.Units)
	assert.Equal(t, 110.0, resp.Body.TargetSPL)
	assert.Equal(t, 60.0, resp.Body.MinSPL)
	assert.Equal(t, 120.0, resp.Body.MaxSPL)
	assert.Equal(t, 0.1, resp.Body.SPLStep)
}
