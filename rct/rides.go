package rct

import (
	"github.com/pkg/errors"
)

// ReadRides walks the rides table up to the first record whose kind is 0xFF
// or the end of b. month is the park's elapsed month counter.
func ReadRides(b []byte, month uint16) ([]Ride, error) {
	var rides []Ride
	for len(b) > 0 && b[0] != ridesEndMarker {
		r, err := readRide(b, month)
		if err != nil {
			return nil, errors.Wrapf(err, "ride %d", len(rides))
		}
		r.Index = len(rides)
		rides = append(rides, r)
		b = b[RideSize:]
	}
	return rides, nil
}

func readRide(b []byte, month uint16) (Ride, error) {
	if err := bounds(b, 0, RideSize); err != nil {
		return Ride{}, err
	}
	r := Ride{Kind: b[rideKindOffset]}
	var err error
	fields := []struct {
		at  int
		dst *uint16
	}{
		{ticketPriceOffset, &r.TicketPrice},
		{rideExcitementOffset, &r.Excitement},
		{rideIntensityOffset, &r.Intensity},
		{rideNauseaOffset, &r.Nausea},
		{constructedMonthOffset, &r.ConstructedMonth},
	}
	for _, f := range fields {
		if *f.dst, err = readW(b, f.at); err != nil {
			return Ride{}, err
		}
	}
	r.Age = month - r.ConstructedMonth
	r.SuggestedPrice = CalculatePrice(r.Kind, r.Excitement, r.Intensity, r.Nausea, r.Age)
	r.CalculatedPrice = CalculatePriceOrig(r.Kind, r.Excitement, r.Intensity, r.Nausea, r.Age)
	return r, nil
}
