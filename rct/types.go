package rct

import "rctdump/sawyer"

type Segment struct {
	Code      uint8
	Qualifier uint8
}

func (s Segment) Name() string {
	return SegmentName(s.Code)
}

type TrackDesign struct {
	Checksum      uint32 // as stored; ChecksumValid says whether it matches
	ChecksumValid bool
	TrackType     uint8
	AirTime       int // raw value * 4
	NumTrains     uint8
	CarsPerTrain  uint8
	Speed         uint8
	Excitement    uint8 // tenths
	Intensity     uint8
	Nausea        uint8
	Segments      []Segment
	Decoded       []byte
}

type Date struct {
	Year, Month, Day uint32
}

type Ride struct {
	Index            int
	Kind             uint8
	TicketPrice      uint16 // tenths of a currency unit
	Excitement       uint16
	Intensity        uint16
	Nausea           uint16
	ConstructedMonth uint16
	Age              uint16 // months, wrapping
	SuggestedPrice   float64
	CalculatedPrice  int32
}

type Park struct {
	Checksum      uint32
	ChecksumValid bool
	CustomObjects uint16
	ElapsedMonths uint16
	DayFraction   uint16
	Date          Date
	InitialCash   uint32
	Loan          uint32
	EntranceFee   uint32
	GuestsInPark  uint16
	ParkRating    uint16
	EncryptedCash uint32
	RealCash      uint32
	Rides         []Ride
	Chunks        []*sawyer.Chunk // decoded, in file order
}
