// Package calculator derives the electrical drive a headphone needs to reach
// a target sound pressure level from its sensitivity and impedance.
//
// All functions are pure and safe for concurrent use. Values are carried at
// full float64 precision; rounding happens only in Result.Display.
package calculator

import (
	"fmt"
	"math"
)

// Slider range for the target SPL, in dB
const (
	MinSPL = 60.0
	MaxSPL = 120.0
)

// Loudness band upper bounds (inclusive), in dB
const (
	quietMaxSPL  = 70.0
	normalMaxSPL = 85.0
	loudMaxSPL   = 100.0
)

// Loudness is a qualitative label for a listening level
type Loudness string

const (
	LoudnessQuiet    Loudness = "Quiet listening level"
	LoudnessNormal   Loudness = "Normal listening level"
	LoudnessLoud     Loudness = "Loud listening level"
	LoudnessVeryLoud Loudness = "Very loud listening level"
)

// Drive is the electrical drive needed at the headphone terminals
type Drive struct {
	PowerMilliwatts float64
	PowerWatts      float64
	VoltageVolts    float64
	CurrentAmps     float64
}

// CurrentMilliamps returns the drive current in mA
func (d Drive) CurrentMilliamps() float64 {
	return d.CurrentAmps * 1000
}

// mwToVoltOffset is the dB offset between a 1 mW and a 1 V reference into
// the given load: 10·log10(1000 / Z).
func mwToVoltOffset(impedance float64) (float64, error) {
	if err := checkImpedance(impedance); err != nil {
		return 0, err
	}
	offset := 10 * math.Log10(1000/impedance)
	if !finite(offset) {
		return 0, fmt.Errorf("%w: impedance %g out of range", ErrInvalidInput, impedance)
	}
	return offset, nil
}

// ConvertSensitivity expresses a sensitivity rating in both dB/mW and dB/V
func ConvertSensitivity(sensitivity, impedance float64, unit Unit) (dbMw, dbV float64, err error) {
	if !finite(sensitivity) {
		return 0, 0, invalidField("sensitivity", "must be a finite number")
	}
	offset, err := mwToVoltOffset(impedance)
	if err != nil {
		return 0, 0, err
	}

	switch unit {
	case DBPerV:
		return sensitivity - offset, sensitivity, nil
	case DBPerMW:
		return sensitivity, sensitivity + offset, nil
	default:
		return 0, 0, invalidField("unit", fmt.Sprintf("%q is not a supported sensitivity unit", unit))
	}
}

// ComputeDrive returns the power, voltage and current needed to reach
// targetSPL with a headphone of the given dB/mW sensitivity and impedance.
func ComputeDrive(sensitivityDbMw, impedance, targetSPL float64) (Drive, error) {
	if !finite(sensitivityDbMw) {
		return Drive{}, invalidField("sensitivity", "must be a finite number")
	}
	if !finite(targetSPL) {
		return Drive{}, invalidField("target_spl", "must be a finite number")
	}
	if err := checkImpedance(impedance); err != nil {
		return Drive{}, err
	}

	splDiff := targetSPL - sensitivityDbMw
	powerMw := math.Pow(10, splDiff/10)
	powerW := powerMw / 1000

	radicand := powerW * impedance
	if !finite(radicand) || radicand < 0 {
		return Drive{}, fmt.Errorf("%w: required power overflows (%g dB above sensitivity)", ErrInvalidInput, splDiff)
	}
	voltage := math.Sqrt(radicand)

	return Drive{
		PowerMilliwatts: powerMw,
		PowerWatts:      powerW,
		VoltageVolts:    voltage,
		CurrentAmps:     voltage / impedance,
	}, nil
}

// ClassifyLoudness maps a target SPL onto a loudness band. Band edges are
// inclusive on the quieter side.
func ClassifyLoudness(targetSPL float64) (Loudness, error) {
	if err := checkTargetSPL(targetSPL); err != nil {
		return "", err
	}
	switch {
	case targetSPL <= quietMaxSPL:
		return LoudnessQuiet, nil
	case targetSPL <= normalMaxSPL:
		return LoudnessNormal, nil
	case targetSPL <= loudMaxSPL:
		return LoudnessLoud, nil
	default:
		return LoudnessVeryLoud, nil
	}
}

// NormalizeProgress maps targetSPL linearly onto [0,1] over [min,max].
// It does not clamp: use ClampSPL first when the input may be out of range.
func NormalizeProgress(targetSPL, min, max float64) (float64, error) {
	if err := checkTargetSPL(targetSPL); err != nil {
		return 0, err
	}
	if err := checkRange(min, max); err != nil {
		return 0, err
	}
	return (targetSPL - min) / (max - min), nil
}

// ClampSPL limits targetSPL to [min,max]
func ClampSPL(targetSPL, min, max float64) (float64, error) {
	if err := checkTargetSPL(targetSPL); err != nil {
		return 0, err
	}
	if err := checkRange(min, max); err != nil {
		return 0, err
	}
	return math.Max(min, math.Min(max, targetSPL)), nil
}

func checkTargetSPL(targetSPL float64) error {
	if !finite(targetSPL) {
		return invalidField("target_spl", "must be a finite number")
	}
	return nil
}

func checkRange(min, max float64) error {
	if !finite(min) || !finite(max) {
		return invalidField("spl_range", "bounds must be finite numbers")
	}
	if max <= min {
		return invalidField("spl_range", "max must be greater than min")
	}
	return nil
}

func checkImpedance(impedance float64) error {
	if !finite(impedance) {
		return invalidField("impedance", "must be a finite number")
	}
	if impedance <= 0 {
		return invalidField("impedance", "must be greater than 0 ohms")
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
