package code

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func flipRandomBits(rnd *rand.Rand, codeword []uint64, count int) []uint64 {
	corrupted := make([]uint64, len(codeword))
	copy(corrupted, codeword)

	positions := rnd.Perm(len(codeword))[:count]
	for _, pos := range positions {
		corrupted[pos] ^= 1
	}

	return corrupted
}

func TestBCH63_45EncodeDecodeRoundTrip(t *testing.T) {
	a := assert.New(t)

	c, err := NewBCH63_45()
	a.NoError(err)
	a.Equal(uint64(45), c.K())
	a.Equal(3, c.T())

	enc := NewEncoder(c)
	dec := NewDecoder(c)

	rnd := rand.New(rand.NewSource(10))
	message := make([]uint64, c.K())
	for i := range message {
		message[i] = uint64(rnd.Intn(2))
	}

	codeword, err := enc.Encode(message)
	a.NoError(err)

	got, err := dec.Decode(codeword)
	a.NoError(err)
	a.Equal(message, got)
}

func TestBCH63_45Corrects3Errors(t *testing.T) {
	a := assert.New(t)

	c, err := NewBCH63_45()
	a.NoError(err)

	enc := NewEncoder(c)
	dec := NewDecoder(c)

	rnd := rand.New(rand.NewSource(11))

	for trial := 0; trial < 200; trial++ {
		message := make([]uint64, c.K())
		for i := range message {
			message[i] = uint64(rnd.Intn(2))
		}

		codeword, err := enc.Encode(message)
		a.NoError(err)

		corrupted := flipRandomBits(rnd, codeword, c.T())

		got, err := dec.Decode(corrupted)
		a.NoError(err, "trial %d", trial)
		a.Equal(message, got, "trial %d", trial)
	}
}

func TestBCH63_30EncodeDecodeRoundTrip(t *testing.T) {
	a := assert.New(t)

	c, err := NewBCH63_30()
	a.NoError(err)
	a.Equal(uint64(30), c.K())
	a.Equal(6, c.T())

	enc := NewEncoder(c)
	dec := NewDecoder(c)

	rnd := rand.New(rand.NewSource(20))
	message := make([]uint64, c.K())
	for i := range message {
		message[i] = uint64(rnd.Intn(2))
	}

	codeword, err := enc.Encode(message)
	a.NoError(err)

	got, err := dec.Decode(codeword)
	a.NoError(err)
	a.Equal(message, got)
}

func TestBCH63_30Corrects6Errors(t *testing.T) {
	a := assert.New(t)

	c, err := NewBCH63_30()
	a.NoError(err)

	enc := NewEncoder(c)
	dec := NewDecoder(c)

	rnd := rand.New(rand.NewSource(21))

	for trial := 0; trial < 200; trial++ {
		message := make([]uint64, c.K())
		for i := range message {
			message[i] = uint64(rnd.Intn(2))
		}

		codeword, err := enc.Encode(message)
		a.NoError(err)

		corrupted := flipRandomBits(rnd, codeword, c.T())

		got, err := dec.Decode(corrupted)
		a.NoError(err, "trial %d", trial)
		a.Equal(message, got, "trial %d", trial)
	}
}

func TestPackUnpackBitsRoundTrip(t *testing.T) {
	a := assert.New(t)

	data := []byte{0xA5, 0x3C, 0xFF}
	bits := PackBits(data, 24)
	a.Equal(data, UnpackBits(bits))
}
