package rct

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"rctdump/sawyer"
)

const checksumSize = 4

var ErrCustomObjects = errors.New("saves with custom objects are not supported")

// ChunkNames names the chunks of a saved game, in file order.
var ChunkNames = []string{"header", "items", "date", "map", "gamedata", "trailer"}

const mandatoryChunks = 5

// LoadTrackDesign decodes a td6 file: one run-length encoded stream followed
// by a 4-byte checksum.
func LoadTrackDesign(file []byte) (*TrackDesign, error) {
	if len(file) < checksumSize {
		return nil, errors.Errorf("track design: %d bytes is too short", len(file))
	}
	body := file[:len(file)-checksumSize]
	t := &TrackDesign{
		Checksum:      binary.LittleEndian.Uint32(file[len(body):]),
		ChecksumValid: sawyer.ValidateTrackChecksum(file),
	}

	v, err := io.ReadAll(sawyer.NewReader(bytes.NewReader(body)))
	if err != nil {
		return nil, errors.Wrap(err, "track design")
	}
	t.Decoded = v

	fields := []struct {
		at  int
		dst *uint8
	}{
		{trackTypeOffset, &t.TrackType},
		{numTrainsOffset, &t.NumTrains},
		{carsPerTrainOffset, &t.CarsPerTrain},
		{speedOffset, &t.Speed},
		{excitementOffset, &t.Excitement},
		{intensityOffset, &t.Intensity},
		{nauseaOffset, &t.Nausea},
	}
	for _, f := range fields {
		*f.dst, err = readB(v, f.at)
		if err != nil {
			return nil, errors.Wrap(err, "track design")
		}
	}
	airTime, err := readB(v, airTimeOffset)
	if err != nil {
		return nil, errors.Wrap(err, "track design air time")
	}
	t.AirTime = int(airTime) * 4

	for at := segmentsOffset; ; at += 2 {
		code, err := readB(v, at)
		if err != nil {
			return nil, errors.Wrapf(err, "track segment %d", len(t.Segments))
		}
		if code == segmentEnd {
			break
		}
		q, err := readB(v, at+1)
		if err != nil {
			return nil, errors.Wrapf(err, "track segment %d", len(t.Segments))
		}
		t.Segments = append(t.Segments, Segment{Code: code, Qualifier: q})
	}
	return t, nil
}

// LoadPark decodes an sv6 file. It stops with ErrCustomObjects, and the
// partially filled park, when the header declares custom objects.
func LoadPark(file []byte) (*Park, error) {
	p := &Park{
		ChecksumValid: sawyer.ValidateSaveChecksum(file),
	}
	if len(file) >= checksumSize {
		p.Checksum = binary.LittleEndian.Uint32(file[len(file)-checksumSize:])
	}

	r := bytes.NewReader(file)
	cr := sawyer.NewChunkReader(r)
	for i := range len(ChunkNames) {
		if i >= mandatoryChunks && r.Len() <= checksumSize {
			break
		}
		c, err := cr.ReadChunk()
		if err != nil {
			return nil, errors.Wrapf(err, "chunk %d (%s)", i, ChunkNames[i])
		}
		p.Chunks = append(p.Chunks, c)

		switch i {
		case 0:
			if err := p.readHeader(c.Data); err != nil {
				return nil, err
			}
			if p.CustomObjects > 0 {
				return p, errors.Wrapf(ErrCustomObjects, "%d custom objects", p.CustomObjects)
			}
		case 2:
			if err := p.readDate(c.Data); err != nil {
				return nil, err
			}
		case 4:
			if err := p.readGameData(c.Data); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

func (p *Park) readHeader(b []byte) error {
	var err error
	p.CustomObjects, err = readW(b, customObjectsOffset)
	return errors.Wrap(err, "header: custom object count")
}

func (p *Park) readDate(b []byte) error {
	var err error
	p.ElapsedMonths, err = readW(b, monthOffset)
	if err != nil {
		return errors.Wrap(err, "date: month")
	}
	p.DayFraction, err = readW(b, dayFractionOffset)
	if err != nil {
		return errors.Wrap(err, "date: day")
	}
	p.Date = DecodeDate(p.ElapsedMonths, p.DayFraction)
	return nil
}

func (p *Park) readGameData(b []byte) error {
	fields := []struct {
		name string
		at   int
		dst  *uint32
	}{
		{"initial cash", initialCashOffset, &p.InitialCash},
		{"loan", loanOffset, &p.Loan},
		{"entrance fee", entranceFeeOffset, &p.EntranceFee},
		{"cash", encryptedCashOffset, &p.EncryptedCash},
	}
	var err error
	for _, f := range fields {
		*f.dst, err = readL(b, f.at)
		if err != nil {
			return errors.Wrapf(err, "game data: %s", f.name)
		}
	}
	p.RealCash = DecryptMoney(p.EncryptedCash)

	p.GuestsInPark, err = readW(b, guestsInParkOffset)
	if err != nil {
		return errors.Wrap(err, "game data: guests in park")
	}
	p.ParkRating, err = readW(b, parkRatingOffset)
	if err != nil {
		return errors.Wrap(err, "game data: park rating")
	}

	if err := bounds(b, ridesStart, ridesEnd-ridesStart); err != nil {
		return errors.Wrap(err, "game data: rides")
	}
	p.Rides, err = ReadRides(b[ridesStart:ridesEnd], p.ElapsedMonths)
	return err
}
