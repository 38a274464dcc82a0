package calculator

import "fmt"

// Input is one full set of calculator inputs
type Input struct {
	Sensitivity float64
	Impedance   float64
	Unit        Unit
	TargetSPL   float64
}

// Result holds every value derived from an Input
type Result struct {
	SensitivityDbMw  float64
	SensitivityDbV   float64
	PowerMilliwatts  float64
	PowerWatts       float64
	VoltageVolts     float64
	CurrentAmps      float64
	CurrentMilliamps float64
	TargetSPL        float64
	Loudness         Loudness
	ProgressFraction float64
}

// Display holds the rounded presentation strings of a Result
type Display struct {
	Voltage         string `json:"voltage" yaml:"voltage"`
	Current         string `json:"current" yaml:"current"`
	Power           string `json:"power" yaml:"power"`
	TargetSPL       string `json:"target_spl" yaml:"target_spl"`
	SensitivityDbV  string `json:"sensitivity_db_v" yaml:"sensitivity_db_v"`
	SensitivityDbMw string `json:"sensitivity_db_mw" yaml:"sensitivity_db_mw"`
}

// Validate rejects inputs the formulas are undefined for. Sensitivity may
// be zero but not negative.
func (in Input) Validate() error {
	if !finite(in.Sensitivity) {
		return invalidField("sensitivity", "must be a finite number")
	}
	if in.Sensitivity < 0 {
		return invalidField("sensitivity", "must not be negative")
	}
	if err := checkImpedance(in.Impedance); err != nil {
		return err
	}
	if !in.Unit.Valid() {
		return invalidField("unit", fmt.Sprintf("%q is not a supported sensitivity unit", in.Unit))
	}
	if !finite(in.TargetSPL) {
		return invalidField("target_spl", "must be a finite number")
	}
	return nil
}

// Calculate validates in and derives the full result. On error the returned
// Result is the zero value.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	dbMw, dbV, err := ConvertSensitivity(in.Sensitivity, in.Impedance, in.Unit)
	if err != nil {
		return Result{}, err
	}

	drive, err := ComputeDrive(dbMw, in.Impedance, in.TargetSPL)
	if err != nil {
		return Result{}, err
	}

	clamped, err := ClampSPL(in.TargetSPL, MinSPL, MaxSPL)
	if err != nil {
		return Result{}, err
	}
	progress, err := NormalizeProgress(clamped, MinSPL, MaxSPL)
	if err != nil {
		return Result{}, err
	}
	loudness, err := ClassifyLoudness(in.TargetSPL)
	if err != nil {
		return Result{}, err
	}

	return Result{
		SensitivityDbMw:  dbMw,
		SensitivityDbV:   dbV,
		PowerMilliwatts:  drive.PowerMilliwatts,
		PowerWatts:       drive.PowerWatts,
		VoltageVolts:     drive.VoltageVolts,
		CurrentAmps:      drive.CurrentAmps,
		CurrentMilliamps: drive.CurrentMilliamps(),
		TargetSPL:        in.TargetSPL,
		Loudness:         loudness,
		ProgressFraction: progress,
	}, nil
}

// Display formats r for presentation
func (r Result) Display() Display {
	return Display{
		Voltage:         fmt.Sprintf("%.4f V", r.VoltageVolts),
		Current:         fmt.Sprintf("%.4f mA", r.CurrentMilliamps),
		Power:           fmt.Sprintf("%.4f mW", r.PowerMilliwatts),
		TargetSPL:       fmt.Sprintf("%.1f dB", r.TargetSPL),
		SensitivityDbV:  fmt.Sprintf("%.4f", r.SensitivityDbV),
		SensitivityDbMw: fmt.Sprintf("%.4f", r.SensitivityDbMw),
	}
}
