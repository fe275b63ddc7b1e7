package pronounce

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWAV_Header(t *testing.T) {
	pcm := make([]byte, 480)
	wav := EncodeWAV(pcm, 24000, 1)

	require.Len(t, wav, wavHeaderSize+len(pcm))
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[20:22]), "PCM format")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[22:24]), "channels")
	assert.Equal(t, uint32(24000), binary.LittleEndian.Uint32(wav[24:28]), "sample rate")
	assert.Equal(t, uint32(48000), binary.LittleEndian.Uint32(wav[28:32]), "byte rate")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(wav[32:34]), "block align")
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36]), "bits per sample")
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(wav[40:44]))
}

func TestToPlayable(t *testing.T) {
	raw := []byte{1, 2, 3, 4}

	tests := []struct {
		name    string
		mime    string
		wantExt string
		wrapped bool
		rate    uint32
	}{
		{"gemini pcm", "audio/L16;codec=pcm;rate=24000", ".wav", true, 24000},
		{"pcm other rate", "audio/pcm;rate=16000", ".wav", true, 16000},
		{"pcm no params", "audio/L16", ".wav", true, 24000},
		{"wav passes through", "audio/wav", ".wav", false, 0},
		{"mp3", "audio/mpeg", ".mp3", false, 0},
		{"unknown", "", ".wav", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ext := toPlayable(raw, tt.mime)
			assert.Equal(t, tt.wantExt, ext)
			if !tt.wrapped {
				assert.Equal(t, raw, out)
				return
			}
			require.Len(t, out, wavHeaderSize+len(raw))
			assert.Equal(t, tt.rate, binary.LittleEndian.Uint32(out[24:28]))
		})
	}
}

func TestEncodeWAV_StereoKeepsSamples(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	wav := EncodeWAV(pcm, 16000, 2)

	require.Len(t, wav, wavHeaderSize+len(pcm))
	assert.Equal(t, cap(wav), len(wav), "buffer sized up front")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(wav[22:24]), "channels")
	assert.Equal(t, uint32(64000), binary.LittleEndian.Uint32(wav[28:32]), "byte rate")
	assert.Equal(t, uint16(4), binary.LittleEndian.Uint16(wav[32:34]), "block align")
	assert.Equal(t, pcm, wav[wavHeaderSize:])
}

func TestEncodeWAV_Empty(t *testing.T) {
	wav := EncodeWAV(nil, 24000, 1)

	require.Len(t, wav, wavHeaderSize)
	assert.Equal(t, uint32(36), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(wav[40:44]))
}
