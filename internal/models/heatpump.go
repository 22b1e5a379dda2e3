package models

import (
	"fmt"
	"math"
)

// FlowInput is the input to a heat pump performance calculation.
type FlowInput struct {
	// Flow is the source-loop mass flow rate, kg/s.
	Flow float64 `json:"flow_kg_s"`
}

// COPOutput is the computed heat pump performance.
type COPOutput struct {
	// COP is the coefficient of performance.
	COP float64 `json:"cop"`
}

// HeatPump models net COP as a function of source mass flow. Heat transfer
// at the source exchanger saturates with flow while pumping power grows with
// its cube, so the net COP has a single interior peak.
type HeatPump struct {
	// RatedCOP is the COP at full exchanger effectiveness with no pumping
	// penalty.
	RatedCOP float64 `json:"rated_cop"`
	// SaturationFlow sets how quickly exchanger effectiveness approaches
	// its limit, kg/s.
	SaturationFlow float64 `json:"saturation_flow_kg_s"`
	// PumpCoeff scales the cubic pumping penalty.
	PumpCoeff float64 `json:"pump_coeff"`
}

// Call computes the net COP at the given source flow.
func (m HeatPump) Call(in FlowInput) (COPOutput, error) {
	if in.Flow <= 0 {
		return COPOutput{}, fmt.Errorf("flow must be positive, got %g", in.Flow)
	}
	effectiveness := 1 - math.Exp(-in.Flow/m.SaturationFlow)
	penalty := 1 + m.PumpCoeff*math.Pow(in.Flow, 3)
	return COPOutput{COP: m.RatedCOP * effectiveness / penalty}, nil
}

// COPProblem optimizes source flow for coefficient of performance.
type COPProblem struct{}

// Input maps the solver variable to a source flow.
func (COPProblem) Input(x float64) (FlowInput, error) {
	return FlowInput{Flow: x}, nil
}

// Objective is the net COP.
func (COPProblem) Objective(_ FlowInput, out COPOutput) (float64, error) {
	return out.COP, nil
}
