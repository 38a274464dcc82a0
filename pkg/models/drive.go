package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// CalculateDriveRequestBody is the body of a drive calculation request
type CalculateDriveRequestBody struct {
	Sensitivity float64 `json:"sensitivity" minimum:"0" example:"100" doc:"Headphone sensitivity in the selected unit"`
	Impedance   float64 `json:"impedance" exclusiveMinimum:"0" example:"32" doc:"Headphone impedance in ohms"`
	Unit        string  `json:"unit,omitempty" enum:"dB/mW,dB/V" default:"dB/mW" doc:"Sensitivity unit, exactly dB/mW or dB/V"`
	TargetSPL   float64 `json:"target_spl" minimum:"60" maximum:"120" example:"110" doc:"Target sound pressure level in dB"`
}

// CalculateDriveRequest represents a request to compute drive requirements
type CalculateDriveRequest struct {
	Body CalculateDriveRequestBody
}

// DriveDisplay holds presentation strings rounded for display
type DriveDisplay struct {
	Voltage         string `json:"voltage" example:"0.5657 V" doc:"Voltage, 4 decimal places"`
	Current         string `json:"current" example:"17.6777 mA" doc:"Current, 4 decimal places"`
	Power           string `json:"power" example:"10.0000 mW" doc:"Power, 4 decimal places"`
	TargetSPL       string `json:"target_spl" example:"110.0 dB" doc:"Target loudness, 1 decimal place"`
	SensitivityDbV  string `json:"sensitivity_db_v" example:"114.9485" doc:"Sensitivity in dB/V, 4 decimal places"`
	SensitivityDbMw string `json:"sensitivity_db_mw" example:"100.0000" doc:"Sensitivity in dB/mW, 4 decimal places"`
}

// CalculateDriveResponseBody is the body of the drive calculation response
type CalculateDriveResponseBody struct {
	ID               string       `json:"id" doc:"Calculation identifier for log correlation"`
	VoltageVolts     float64      `json:"voltage_volts" doc:"Required voltage in volts"`
	CurrentMilliamps float64      `json:"current_milliamps" doc:"Required current in milliamps"`
	PowerMilliwatts  float64      `json:"power_milliwatts" doc:"Required power in milliwatts"`
	PowerWatts       float64      `json:"power_watts" doc:"Required power in watts"`
	SensitivityDbV   float64      `json:"sensitivity_db_v" doc:"Sensitivity expressed in dB/V"`
	SensitivityDbMw  float64      `json:"sensitivity_db_mw" doc:"Sensitivity expressed in dB/mW"`
	LoudnessLabel    string       `json:"loudness_label" enum:"Quiet listening level,Normal listening level,Loud listening level,Very loud listening level" doc:"Qualitative loudness band of the target SPL"`
	ProgressFraction float64      `json:"progress_fraction" minimum:"0" maximum:"1" doc:"Target SPL position within the 60-120 dB range"`
	Display          DriveDisplay `json:"display" doc:"Rounded presentation strings"`
}

// CalculateDriveResponse represents the computed drive requirements
type CalculateDriveResponse struct {
	Body CalculateDriveResponseBody
}

// DriveDefaultsResponseBody is the body of the defaults response
type DriveDefaultsResponseBody struct {
	Sensitivity float64  `json:"sensitivity" doc:"Default sensitivity"`
	Impedance   float64  `json:"impedance" doc:"Default impedance in ohms"`
	Unit        string   `json:"unit" doc:"Default sensitivity unit"`
	Units       []string `json:"units" doc:"Supported sensitivity units"`
	TargetSPL   float64  `json:"target_spl" doc:"Default target SPL in dB"`
	MinSPL      float64  `json:"min_spl" doc:"Lowest selectable target SPL in dB"`
	MaxSPL      float64  `json:"max_spl" doc:"Highest selectable target SPL in dB"`
	SPLStep     float64  `json:"spl_step" doc:"Target SPL step in dB"`
}

// DriveDefaultsResponse represents the calculator's initial form values
type DriveDefaultsResponse struct {
	Body DriveDefaultsResponseBody
}
