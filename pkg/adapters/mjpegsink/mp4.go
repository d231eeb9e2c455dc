package mjpegsink

import (
	"bytes"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"
)

// Bytes muxes the recorded JPEG samples into a fragmented MP4 container
// with a Motion-JPEG video track.
func (s *Sink) Bytes() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.samples) == 0 {
		return nil, fmt.Errorf("no frames recorded")
	}

	timescale := uint32(s.fps * 1000)
	trackID := uint32(1)

	// Create initialization segment
	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(timescale, "video", "en")

	trak := init.Moov.Trak

	// Motion-JPEG sample entry; each sample is a complete JPEG image and
	// needs no codec configuration record.
	entry := mp4.CreateVisualSampleEntryBox("jpeg", uint16(s.width), uint16(s.height), nil)
	trak.Mdia.Minf.Stbl.Stsd.AddChild(entry)

	trak.Tkhd.Width = mp4.Fixed32(s.width << 16)
	trak.Tkhd.Height = mp4.Fixed32(s.height << 16)

	frag, err := mp4.CreateFragment(1, trackID)
	if err != nil {
		return nil, fmt.Errorf("create fragment: %w", err)
	}

	defaultDur := uint32(timescale) / uint32(s.fps)
	for i, smp := range s.samples {
		var dur uint32
		if i < len(s.samples)-1 {
			dur = uint32((s.samples[i+1].pts - smp.pts).Seconds() * float64(timescale))
		}
		if dur == 0 {
			dur = defaultDur
		}

		decodeTime := uint64(smp.pts.Seconds() * float64(timescale))

		// Every JPEG sample is independently decodable.
		frag.AddFullSample(mp4.FullSample{
			Sample: mp4.Sample{
				Flags: mp4.SyncSampleFlags,
				Size:  uint32(len(smp.data)),
				Dur:   dur,
			},
			DecodeTime: decodeTime,
			Data:       smp.data,
		})
	}

	var buf bytes.Buffer

	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso2", "mp41"})
	if err := ftyp.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode ftyp: %w", err)
	}
	if err := init.Moov.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode moov: %w", err)
	}
	if err := frag.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode fragment: %w", err)
	}

	return buf.Bytes(), nil
}
