// Package models provides small thermal models used by the demo service and
// integration tests. Each model satisfies the solve.Model contract and ships
// with a matching problem definition.
package models

import (
	"fmt"
	"math"
)

// TankInput is the input to a tank cooldown simulation.
type TankInput struct {
	// Elapsed is the time since cooldown began, in seconds.
	Elapsed float64 `json:"elapsed_s"`
}

// TankOutput is the simulated tank state.
type TankOutput struct {
	// Temperature is the bulk fluid temperature, in degrees C.
	Temperature float64 `json:"temperature_c"`
}

// TankCooling is a lumped-capacitance storage tank losing heat to ambient
// air. Temperature follows Newton's law of cooling with a single time
// constant.
type TankCooling struct {
	// Initial is the starting temperature, degrees C.
	Initial float64 `json:"initial_c"`
	// Ambient is the surrounding air temperature, degrees C.
	Ambient float64 `json:"ambient_c"`
	// TimeConstant is the thermal time constant, seconds.
	TimeConstant float64 `json:"time_constant_s"`
}

// Call simulates the tank temperature after the given elapsed time.
func (m TankCooling) Call(in TankInput) (TankOutput, error) {
	if in.Elapsed < 0 {
		return TankOutput{}, fmt.Errorf("elapsed time must be non-negative, got %g", in.Elapsed)
	}
	if m.TimeConstant <= 0 {
		return TankOutput{}, fmt.Errorf("time constant must be positive, got %g", m.TimeConstant)
	}
	temp := m.Ambient + (m.Initial-m.Ambient)*math.Exp(-in.Elapsed/m.TimeConstant)
	return TankOutput{Temperature: temp}, nil
}

// CooldownProblem root-finds the elapsed time at which the tank reaches a
// temperature setpoint.
type CooldownProblem struct {
	// Setpoint is the target temperature, degrees C.
	Setpoint float64 `json:"setpoint_c"`
}

// Input maps the solver variable to an elapsed time.
func (p CooldownProblem) Input(x float64) (TankInput, error) {
	return TankInput{Elapsed: x}, nil
}

// Residual is the temperature excess over the setpoint.
func (p CooldownProblem) Residual(_ TankInput, out TankOutput) (float64, error) {
	return out.Temperature - p.Setpoint, nil
}
