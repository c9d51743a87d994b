/*
DESCRIPTION
  audio.go detects IEC 61937 non-PCM audio bursts embedded in an otherwise
  linear-PCM audio block stream and re-packetizes them into whole AC-3,
  Enhanced AC-3 or AAC frames, falling back to linear PCM when no burst
  preamble is ever observed.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pv3

import (
	"encoding/binary"
	"fmt"
)

// AudioCodec identifies the codec carried by an audio Packet.
type AudioCodec int

const (
	// AudioCodecUnknown means no codec has been determined yet: audio
	// blocks are still being buffered in search of an IEC 61937 burst
	// preamble or the linear PCM threshold.
	AudioCodecUnknown AudioCodec = iota
	AudioCodecPCM
	AudioCodecAC3
	AudioCodecEAC3
	AudioCodecAAC
)

func (c AudioCodec) String() string {
	switch c {
	case AudioCodecPCM:
		return "pcm_s16be"
	case AudioCodecAC3:
		return "ac3"
	case AudioCodecEAC3:
		return "eac3"
	case AudioCodecAAC:
		return "aac"
	default:
		return "unknown"
	}
}

const (
	maxAudioSampleRate    = 48000
	maxAudioFramePerBlock = 1 + (maxAudioSampleRate*1001)/30000
	maxAudioBlockSize     = maxAudioFramePerBlock * 2 * 2 // 16-bit, 2ch

	// demuxRawAudioBufferSize bounds the re-packetizing FIFO. Three
	// blocks' worth is enough slack for a burst frame spanning multiple
	// audio blocks before it's reassembled.
	demuxRawAudioBufferSize = maxAudioBlockSize * 3

	// forcePCMLimit is the number of unsynced bytes the demuxer will
	// buffer hunting for a burst preamble before giving up and treating
	// the stream as linear PCM. The original encoder marks this value
	// "XXX", suggesting it was never fully validated, but no replacement
	// derivation exists; it is carried through unchanged.
	forcePCMLimit = 1536 * 4
)

var burstPreamble = [4]byte{0xf8, 0x72, 0x4e, 0x1f} // IEC 61937 Pa, Pb.

// audioState holds the running state of the non-PCM re-packetizer across
// calls to demuxAudioBlock, mirroring the audio fields of the original
// demux context.
type audioState struct {
	codec             AudioCodec
	nonpcmPacketSize int
	nonpcmPacketPTS  int64
	fifo             []byte
	accumFrameCount  uint64
}

// AudioPacket is one demuxed audio packet: either a linear PCM frame or a
// reassembled non-PCM burst frame.
type AudioPacket struct {
	Codec    AudioCodec
	Data     []byte
	PTS      int64
	Duration int64
}

func scanBurstPreamble(buf []byte) (offset int, found bool) {
	for i := 0; i+4 <= len(buf); i++ {
		if buf[i] == burstPreamble[0] && buf[i+1] == burstPreamble[1] &&
			buf[i+2] == burstPreamble[2] && buf[i+3] == burstPreamble[3] {
			return i, true
		}
	}
	return 0, false
}

// classifyBurst inspects the Pc field of an IEC 61937 burst-preamble and
// returns the codec it announces and the reassembled packet size in bytes.
// Null data and pause bursts are reported via ok=false with a nil error,
// since the stream should keep buffering rather than fail on them.
func classifyBurst(pc uint16) (codec AudioCodec, packetSize int, ok bool, err error) {
	switch pc & 0x1f {
	case 0x00, 0x03: // Null data, Pause: not an error, just not a payload.
		return AudioCodecUnknown, 0, false, nil

	case 0x01: // AC-3 data.
		return AudioCodecAC3, 1536 * 4, true, nil

	case 0x14: // MPEG-4 AAC.
		switch (pc >> 5) & 0x3 {
		case 0:
			return AudioCodecAAC, 1024 * 4, true, nil
		case 1:
			return AudioCodecAAC, 2048 * 4, true, nil
		case 2:
			return AudioCodecAAC, 4096 * 4, true, nil
		default: // 3
			return AudioCodecAAC, 512 * 4, true, nil
		}

	case 0x15: // Enhanced AC-3.
		return AudioCodecEAC3, 6144 * 4, true, nil

	default:
		return AudioCodecUnknown, 0, false, fmt.Errorf("%w: IEC 61937 data type %#x", ErrUnsupported, pc&0x1f)
	}
}

// demuxAudioBlock feeds one raw audio block (block.frame_count*4 bytes of
// interleaved 16-bit stereo samples, possibly carrying an IEC 61937 burst)
// through the re-packetizer. It returns the next complete AudioPacket, or
// nil if the block was buffered without producing one yet.
func (s *audioState) demuxAudioBlock(block []byte) (*AudioPacket, error) {
	bufSize := len(block)
	nonpcmOfs := 0

	// A burst preamble is rescanned for on every block, so a format
	// change mid-stream can be picked up; once locked to PCM the
	// decision is permanent (there's no path back from PCM to a burst
	// codec), so the scan is skipped entirely in that state.
	if s.codec != AudioCodecPCM {
		if ofs, found := scanBurstPreamble(block); found {
			pc := binary.BigEndian.Uint16(block[ofs+4 : ofs+6])
			codec, size, ok, err := classifyBurst(pc)
			if err != nil {
				return nil, err
			}
			if ok {
				s.codec = codec
				s.nonpcmPacketSize = size
				s.nonpcmPacketPTS = int64(s.accumFrameCount) + int64(ofs+8)/4
				nonpcmOfs = ofs + 8 // sync word (4B) + Pc/Pd (4B).
				s.fifo = s.fifo[:0]  // discard anything buffered before sync.
			}
		}
	}

	if len(s.fifo)+bufSize >= demuxRawAudioBufferSize {
		return nil, fmt.Errorf("%w: raw audio re-packetizing buffer overflow", ErrInvalidData)
	}

	switch s.codec {
	case AudioCodecUnknown:
		if forcePCMLimit <= len(s.fifo) {
			s.codec = AudioCodecPCM
			pkt := &AudioPacket{
				Codec:    AudioCodecPCM,
				Data:     append(append([]byte{}, s.fifo...), block...),
				PTS:      -1, // no timing reference: PCM was never synced to a frame boundary.
				Duration: int64((len(s.fifo) + bufSize) / 4),
			}
			s.fifo = s.fifo[:0]
			return pkt, nil
		}
		s.fifo = append(s.fifo, block[nonpcmOfs:]...)
		return nil, nil

	case AudioCodecPCM:
		return &AudioPacket{
			Codec:    AudioCodecPCM,
			Data:     append([]byte{}, block...),
			PTS:      int64(s.accumFrameCount),
			Duration: int64(bufSize / 4),
		}, nil

	default: // non-PCM burst codec.
		if len(s.fifo)+bufSize < s.nonpcmPacketSize {
			if len(s.fifo) > 0 {
				s.fifo = append(s.fifo, block...)
			} else {
				s.fifo = append(s.fifo, block[nonpcmOfs:]...)
			}
			return nil, nil
		}

		data := make([]byte, s.nonpcmPacketSize)
		fifoLen := len(s.fifo)
		copy(data, s.fifo)
		copy(data[fifoLen:], block[:s.nonpcmPacketSize-fifoLen])

		pkt := &AudioPacket{
			Codec:    s.codec,
			Data:     data,
			PTS:      s.nonpcmPacketPTS,
			Duration: 0, // the original marks this "XXX": unknown without decoding the frame.
		}

		s.fifo = append(s.fifo[:0], block[nonpcmOfs:]...)

		return pkt, nil
	}
}
