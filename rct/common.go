package rct

import (
	"encoding/binary"
	"math/bits"

	"github.com/pkg/errors"
)

const (
	// td6, offsets into the decoded buffer
	trackTypeOffset    = 0x00
	airTimeOffset      = 0x4A
	numTrainsOffset    = 0x4C
	carsPerTrainOffset = 0x4D
	speedOffset        = 0x50
	excitementOffset   = 0x5B
	intensityOffset    = 0x5C
	nauseaOffset       = 0x5D
	segmentsOffset     = 0xA3
	segmentEnd         = 0xFF

	// sv6 header chunk
	customObjectsOffset = 2

	// sv6 date chunk
	monthOffset       = 0
	dayFractionOffset = 2

	// sv6 game data chunk
	initialCashOffset   = 0x27_1024
	loanOffset          = 0x27_1028
	entranceFeeOffset   = 0x27_1030
	guestsInParkOffset  = 0x27_148C
	parkRatingOffset    = 0x27_18F8
	encryptedCashOffset = 0x27_2440
	ridesStart          = 0x27_C540
	ridesEnd            = 0x2A_22E0

	// ride record
	RideSize               = 608
	rideKindOffset         = 0x000
	ticketPriceOffset      = 0x138
	rideExcitementOffset   = 0x140
	rideIntensityOffset    = 0x142
	rideNauseaOffset       = 0x144
	constructedMonthOffset = 0x180
	ridesEndMarker         = 0xFF

	moneyMask = 0xF4EC_9621
)

var ErrOutOfBounds = errors.New("field outside decoded buffer")

func bounds(b []byte, at, size int) error {
	if at < 0 || at+size > len(b) {
		return errors.Wrapf(ErrOutOfBounds, "%d bytes at %#x, buffer has %#x", size, at, len(b))
	}
	return nil
}

func readB(b []byte, at int) (uint8, error) {
	if err := bounds(b, at, 1); err != nil {
		return 0, err
	}
	return b[at], nil
}

func readW(b []byte, at int) (uint16, error) {
	if err := bounds(b, at, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[at:]), nil
}

func readL(b []byte, at int) (uint32, error) {
	if err := bounds(b, at, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[at:]), nil
}

// DecryptMoney recovers the park's real cash counter.
func DecryptMoney(c uint32) uint32 {
	return bits.RotateLeft32(c^moneyMask, 13)
}

func EncryptMoney(x uint32) uint32 {
	return bits.RotateLeft32(x, -13) ^ moneyMask
}

// DecodeDate splits the elapsed month counter into year and month (8 months
// a year) and scales the 16-bit day fraction to a day of the month.
func DecodeDate(month, dayFraction uint16) Date {
	return Date{
		Year:  uint32(month / 8),
		Month: uint32(month % 8),
		Day:   uint32(dayFraction)*16/0x8421 + 1,
	}
}
