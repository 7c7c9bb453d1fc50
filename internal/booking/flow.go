package booking

import (
	"fmt"

	"go.uber.org/zap"
)

// TripType selects between the form's two journey shapes.
type TripType string

const (
	TripOneWay    TripType = "one_way"
	TripRoundTrip TripType = "round_trip"
)

// BookingRequest is the structured input for one end-to-end booking attempt.
// ReturnDate is meaningful only for round trips. The adults/infants business
// rules belong to the system under test; this layer verifies them through
// the validation probes but never enforces them.
type BookingRequest struct {
	TripType      TripType `json:"trip_type"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureDate string   `json:"departure_date"`
	ReturnDate    string   `json:"return_date,omitempty"`
	Adults        int      `json:"adults"`
	Infants       int      `json:"infants"`
}

// FlowResult is the incrementally built record of a booking attempt. Append
// only while the flow runs, immutable once returned.
type FlowResult struct {
	Success        bool     `json:"success"`
	StepsCompleted []string `json:"steps_completed"`
	Errors         []string `json:"errors"`
	Screenshots    []string `json:"screenshots"`
}

// Step names recorded in FlowResult.StepsCompleted, in flow order.
const (
	StepTripType   = "trip_type_selected"
	StepOrigin     = "origin_selected"
	StepDest       = "destination_selected"
	StepDates      = "dates_selected"
	StepPassengers = "passengers_selected"
)

// PerformCompleteBookingFlow drives the whole booking form from req. It is a
// diagnostic flow: a failed step records an error and later steps still run,
// so one run surfaces every problem at once. The only ordering dependency
// honored is that passenger confirmation is attempted only after passenger
// selection succeeded. A final screenshot is always taken; a fault escaping
// a step additionally produces a failure screenshot. The method itself never
// panics outward.
func (p *Page) PerformCompleteBookingFlow(req BookingRequest) (result FlowResult) {
	result.Success = true

	defer func() {
		if r := recover(); r != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("unexpected fault in booking flow: %v", r))
			result.Success = false
			if path := p.CaptureOnFailure("booking_flow"); path != "" {
				result.Screenshots = append(result.Screenshots, path)
			}
		}
	}()

	step := func(name string, ok bool, errMsg string) {
		if ok {
			result.StepsCompleted = append(result.StepsCompleted, name)
			return
		}
		result.Errors = append(result.Errors, errMsg)
		result.Success = false
		p.log.Warn("booking flow step failed", zap.String("step", name))
	}

	if req.TripType == TripRoundTrip {
		step(StepTripType, p.SelectRoundTrip(), "failed to select round trip")
	} else {
		step(StepTripType, p.SelectOneWay(), "failed to select one way trip")
	}

	step(StepOrigin,
		req.Origin != "" && p.SelectOrigin(req.Origin),
		fmt.Sprintf("failed to select origin: %q", req.Origin))

	step(StepDest,
		req.Destination != "" && p.SelectDestination(req.Destination),
		fmt.Sprintf("failed to select destination: %q", req.Destination))

	if req.DepartureDate != "" {
		step(StepDates,
			p.SelectDates(req.DepartureDate, req.ReturnDate),
			"failed to select dates")
	}

	adults := req.Adults
	if adults < 1 {
		adults = 1
	}
	if p.SelectPassengers(adults, req.Infants) {
		result.StepsCompleted = append(result.StepsCompleted, StepPassengers)
		if !p.ConfirmPassengerSelection() {
			result.Errors = append(result.Errors, "failed to confirm passengers")
			result.Success = false
		}
	} else {
		result.Errors = append(result.Errors, "failed to select passengers")
		result.Success = false
	}

	if path := p.TakeScreenshot("booking_flow_complete"); path != "" {
		result.Screenshots = append(result.Screenshots, path)
	}
	return result
}
