package assets

import (
	"encoding/binary"
	"testing"

	"github.com/automoto/cave-island/config"
)

func TestSynthesizeTone(t *testing.T) {
	tests := []struct {
		name      string
		rate      int
		tone      config.Tone
		wantBytes int
	}{
		{name: "pickup chirp", rate: 44100, tone: config.Tone{StartHz: 660, EndHz: 1320, Duration: 0.1}, wantBytes: 4410 * 4},
		{name: "one second", rate: 8000, tone: config.Tone{StartHz: 440, EndHz: 440, Duration: 1}, wantBytes: 8000 * 4},
		{name: "empty", rate: 44100, tone: config.Tone{StartHz: 440, EndHz: 440}, wantBytes: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pcm := SynthesizeTone(tc.rate, tc.tone)
			if len(pcm) != tc.wantBytes {
				t.Fatalf("len = %d, want %d", len(pcm), tc.wantBytes)
			}
			for i := 0; i+4 <= len(pcm); i += 4 {
				left := binary.LittleEndian.Uint16(pcm[i:])
				right := binary.LittleEndian.Uint16(pcm[i+2:])
				if left != right {
					t.Fatalf("frame %d: left %d != right %d", i/4, left, right)
				}
			}
		})
	}
}

func TestSynthesizeToneFadesOut(t *testing.T) {
	pcm := SynthesizeTone(1000, config.Tone{StartHz: 50, EndHz: 50, Duration: 1})

	peak := func(from, to int) int {
		m := 0
		for i := from; i < to; i++ {
			v := int(int16(binary.LittleEndian.Uint16(pcm[i*4:])))
			if v < 0 {
				v = -v
			}
			m = max(m, v)
		}
		return m
	}

	head, tail := peak(0, 100), peak(900, 1000)
	if tail >= head/4 {
		t.Errorf("tail peak %d not well below head peak %d", tail, head)
	}
}
