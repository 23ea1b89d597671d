package remote

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/henkwiedig/msposd-remote/pkg/input"
	"github.com/henkwiedig/msposd-remote/pkg/msp"
)

func TestPinMapping(t *testing.T) {
	conf := NewConfig()
	pins, mapping, err := conf.PinMapping()
	require.NoError(t, err)
	require.Equal(t, []int{16, 13, 18, 11, 32, 38}, pins)
	require.Equal(t, input.KeyW, mapping[16])
	require.Equal(t, input.KeyX, mapping[38])

	conf.Pins = ""
	pins, mapping, err = conf.PinMapping()
	require.NoError(t, err)
	require.Nil(t, pins)
	require.Nil(t, mapping)
}

func TestPinMappingErrors(t *testing.T) {
	testCases := []struct {
		name string
		pins string
	}{
		{"no colon", "16"},
		{"bad pin", "x:w"},
		{"bad key", "16:z"},
		{"quit not mappable", "16:q"},
		{"duplicate pin", "16:w,16:a"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := NewConfig()
			conf.Pins = tc.pins
			_, _, err := conf.PinMapping()
			require.Error(t, err)
		})
	}
}

func TestRCCommandByte(t *testing.T) {
	conf := NewConfig()
	b, err := conf.RCCommandByte()
	require.NoError(t, err)
	require.Equal(t, msp.CmdRC, b)

	conf.RCCommand = 300
	_, err = conf.RCCommandByte()
	require.Error(t, err)
}

func TestDefaultKeymapTotal(t *testing.T) {
	m := DefaultKeymap()
	for _, k := range input.Keys {
		ch, ok := m.Lookup(k)
		require.True(t, ok, "key '%c' must be mapped", k)
		for i := 4; i < msp.ChannelCount; i++ {
			require.Equal(t, msp.ChannelNeutral, ch[i])
		}
	}
	_, ok := m.Lookup(input.KeyQuit)
	require.False(t, ok)
	require.Equal(t, msp.NeutralChannels(), m.Neutral())
}
