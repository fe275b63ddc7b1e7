package pronounce

import (
	"encoding/binary"
	"mime"
	"strconv"
	"strings"
)

// PCM defaults for providers that return headerless audio.
const (
	defaultSampleRate = 24000
	defaultChannels   = 1
	bitsPerSample     = 16
)

// wavHeaderSize is the size of a canonical 44-byte RIFF/WAVE header.
const wavHeaderSize = 44

// EncodeWAV wraps 16-bit little-endian PCM samples in a WAV container.
func EncodeWAV(pcm []byte, sampleRate, channels int) []byte {
	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	le := binary.LittleEndian
	b := make([]byte, 0, wavHeaderSize+len(pcm))

	b = append(b, "RIFF"...)
	b = le.AppendUint32(b, uint32(36+len(pcm)))
	b = append(b, "WAVE"...)

	b = append(b, "fmt "...)
	b = le.AppendUint32(b, 16) // fmt chunk size
	b = le.AppendUint16(b, 1)  // PCM
	b = le.AppendUint16(b, uint16(channels))
	b = le.AppendUint32(b, uint32(sampleRate))
	b = le.AppendUint32(b, uint32(byteRate))
	b = le.AppendUint16(b, uint16(blockAlign))
	b = le.AppendUint16(b, bitsPerSample)

	b = append(b, "data"...)
	b = le.AppendUint32(b, uint32(len(pcm)))
	return append(b, pcm...)
}

// toPlayable returns audio an external player can open, and the file
// extension to use for it. Raw PCM is wrapped in a WAV header; anything
// else passes through.
func toPlayable(audio []byte, mimeType string) ([]byte, string) {
	mediaType, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(mimeType))
	}
	mediaType = strings.ToLower(mediaType)

	switch mediaType {
	case "audio/l16", "audio/pcm":
		rate := defaultSampleRate
		if r, err := strconv.Atoi(params["rate"]); err == nil && r > 0 {
			rate = r
		}
		channels := defaultChannels
		if c, err := strconv.Atoi(params["channels"]); err == nil && c > 0 {
			channels = c
		}
		return EncodeWAV(audio, rate, channels), ".wav"
	case "audio/mpeg", "audio/mp3":
		return audio, ".mp3"
	case "audio/ogg", "audio/opus":
		return audio, ".ogg"
	default:
		return audio, ".wav"
	}
}
