package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	pins    []int
	samples []map[int]int
	pos     int
	err     error
}

func (r *scriptedReader) Pins() []int { return r.pins }

func (r *scriptedReader) ReadAll() (map[int]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	s := r.samples[r.pos]
	if r.pos+1 < len(r.samples) {
		r.pos++
	}
	return s, nil
}

func (r *scriptedReader) Close() error { return nil }

func TestPinSourceRisingEdgeOnly(t *testing.T) {
	levels := []int{0, 0, 1, 1, 0, 1}
	reader := &scriptedReader{pins: []int{16}}
	for _, v := range levels {
		reader.samples = append(reader.samples, map[int]int{16: v})
	}
	src := NewPinSource(reader, map[int]Event{16: KeyW})

	var fired []int
	for i := range levels {
		events, err := src.Poll()
		require.NoError(t, err)
		if len(events) > 0 {
			require.Equal(t, []Event{KeyW}, events)
			fired = append(fired, i)
		}
	}
	require.Equal(t, []int{2, 5}, fired)
}

func TestPinSourceOrderAndUnmappedPins(t *testing.T) {
	reader := &scriptedReader{
		pins:    []int{16, 13, 38},
		samples: []map[int]int{{16: 1, 13: 1, 38: 1}},
	}
	src := NewPinSource(reader, map[int]Event{16: KeyW, 13: KeyA})

	events, err := src.Poll()
	require.NoError(t, err)
	// pin open order, unmapped pin 38 fires nothing
	require.Equal(t, []Event{KeyW, KeyA}, events)

	// sustained high never re-fires
	events, err = src.Poll()
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestPinSourceReadError(t *testing.T) {
	wantErr := errors.New("line gone")
	reader := &scriptedReader{pins: []int{16}, err: wantErr}
	src := NewPinSource(reader, map[int]Event{16: KeyW})
	_, err := src.Poll()
	require.Equal(t, wantErr, err)
}
