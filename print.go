package main

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"rctdump/rct"
)

func tenths[T ~uint8 | ~uint16 | ~int32 | ~float64](v T) string {
	return fmt.Sprintf("%.1f", float64(v)/10)
}

func describeChecksum(sum uint32, valid bool) []string {
	status := "ok"
	if !valid {
		status = "MISMATCH"
	}
	return []string{fmt.Sprintf("Checksum: %08x (%s)", sum, status)}
}

func describeTrack(t *rct.TrackDesign) []string {
	out := describeChecksum(t.Checksum, t.ChecksumValid)
	out = append(out,
		fmt.Sprintf("Track type: %d", t.TrackType),
		fmt.Sprintf("Air time: %d", t.AirTime),
		fmt.Sprintf("Number of trains: %d", t.NumTrains),
		fmt.Sprintf("Cars per train: %d", t.CarsPerTrain),
		fmt.Sprintf("Speed: %d", t.Speed),
		fmt.Sprintf("Excitement: %s; Intensity: %s; Nausea: %s", tenths(t.Excitement), tenths(t.Intensity), tenths(t.Nausea)),
	)
	for _, s := range t.Segments {
		out = append(out, fmt.Sprintf("Track [%s; q: %08b]", s.Name(), s.Qualifier))
	}
	out = append(out, fmt.Sprintf("Number of segments: %d", len(t.Segments)))
	return out
}

func describeChunks(p *rct.Park) []string {
	var out []string
	for i, c := range p.Chunks {
		out = append(out, fmt.Sprintf("Chunk %d %-8s %-10v %8d -> %8d bytes, xxh64 %016x",
			i, rct.ChunkNames[i], c.Encoding, c.Length, len(c.Data), xxhash.Sum64(c.Data)))
	}
	return out
}

func describePark(p *rct.Park, verbose bool) []string {
	out := describeChecksum(p.Checksum, p.ChecksumValid)
	if verbose {
		out = append(out, describeChunks(p)...)
	}
	out = append(out,
		fmt.Sprintf("Day: %d; Month: %d; Year: %d", p.Date.Day, p.Date.Month, p.Date.Year),
		fmt.Sprintf("Initial cash: %d", p.InitialCash),
		fmt.Sprintf("Loan: %d", p.Loan),
		fmt.Sprintf("Entrance fee: %d", p.EntranceFee),
		fmt.Sprintf("Guests in park: %d", p.GuestsInPark),
		fmt.Sprintf("Park rating: %d", p.ParkRating),
		fmt.Sprintf("Real cash: %d", p.RealCash),
	)
	for _, r := range p.Rides {
		out = append(out,
			fmt.Sprintf("+-= RIDE 0x%X =-", r.Kind),
			fmt.Sprintf("| Excitement: %d; Intensity: %d; Nausea: %d", r.Excitement, r.Intensity, r.Nausea),
			fmt.Sprintf("| Age (months): %d", r.Age),
			fmt.Sprintf("| Ticket price: %s (suggested %s)", tenths(r.TicketPrice), tenths(r.SuggestedPrice)),
			fmt.Sprintf("| Calculated: %s", tenths(r.CalculatedPrice)),
			".",
		)
	}
	out = append(out, fmt.Sprintf("Number of rides: %d", len(p.Rides)))
	return out
}
