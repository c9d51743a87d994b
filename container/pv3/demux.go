/*
DESCRIPTION
  demux.go implements Demuxer, which walks a PV3/PV4 stream frame by
  frame: the fixed file header, the optional sidecar seek index, and the
  READ_FRAME_HEADER -> READ_AUDIO_BLOCK -> READ_VIDEO_BLOCK record cycle,
  carried across ReadPacket calls by the pendingVideo field so a frame's
  audio and video packets are returned separately without losing sync.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pv3

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/ausocean/utils/logging"
)

// maxVideoBlockSize bounds a single video sub-bitstream's size. The
// original encoder never documented the derivation beyond a comment
// noting the value is unverified.
const maxVideoBlockSize = 72 * 4096

// blockAlign is the byte alignment each video sub-bitstream is padded to
// before the next one (or the next frame record) begins.
const blockAlign = 32

// frameAlign is the byte alignment every frame record (and its audio
// block) is padded to.
const frameAlign = 4096

// ByteReader is the stream Demuxer reads from. It must support seeking so
// records can be padding-aligned and so Seek can jump to an indexed
// frame.
type ByteReader interface {
	io.Reader
	io.Seeker
}

// PacketKind distinguishes the two kinds of Packet a Demuxer emits.
type PacketKind int

const (
	KindVideo PacketKind = iota
	KindAudio
)

// VideoPacket carries one frame's video sub-bitstreams, ready to hand to
// codec/pv3.FrameDecoder.DecodeFrame, along with the per-frame metadata
// from its frame header.
type VideoPacket struct {
	// Blocks holds 2 (progressive) or 4 (interlaced) independently
	// decodable sub-bitstreams.
	Blocks                           [][]byte
	PTS                              int64
	DAR                              Rational
	EncodingQ                        uint8
	SampleAspectNum, SampleAspectDen int
}

// Packet is one demuxed unit: exactly one of Video or Audio is set,
// according to Kind.
type Packet struct {
	Kind  PacketKind
	Video *VideoPacket
	Audio *AudioPacket
}

// Demuxer reads frame and audio records out of a PV3/PV4 stream. It is
// not safe for concurrent use: ReadPacket advances the underlying reader
// sequentially and there is no external lifecycle surface worth guarding
// with a mutex, unlike a long-lived device handle.
type Demuxer struct {
	r        ByteReader
	Header   *FileHeader
	index    []IndexEntry
	indexPos int
	hasAudio bool

	frameCurrent int
	audio        audioState

	// pendingVideo holds the current frame's header once its audio
	// packet has been returned from ReadPacket, so the next call reads
	// that same frame's video blocks from the reader's current position
	// instead of mistaking them for the next frame header. This mirrors
	// the read_context the original demuxer carries between calls to
	// esdv_read_packet.
	pendingVideo *frameHeader

	log logging.Logger
}

// Open reads the file header from r and, if sidecarIndex is non-nil, the
// sidecar seek index from it. A missing sidecar is not an error: Duration
// and AudioFrameCount then report ok=false and Seek fails, though
// ReadPacket still works by scanning forward.
func Open(r ByteReader, sidecarIndex io.Reader, log logging.Logger) (*Demuxer, error) {
	header, err := readFileHeader(r)
	if err != nil {
		return nil, err
	}

	var index []IndexEntry
	if sidecarIndex != nil {
		index, err = readIndex(sidecarIndex)
		if err != nil {
			return nil, err
		}
	}

	if len(index) == 0 {
		log.Info("pv3: no sidecar index; frame count and seeking are unavailable")
	}

	return &Demuxer{
		r:        r,
		Header:   header,
		index:    index,
		hasAudio: len(index) == 0 || lastAudioFrameCount(index) > 0,
		log:      log,
	}, nil
}

// OpenFile opens path and its "path+i" sidecar index (if present) and
// returns a ready Demuxer along with a Closer for both files.
func OpenFile(path string, log logging.Logger) (d *Demuxer, closer io.Closer, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("pv3: opening stream file: %w", err)
	}

	var idx *os.File
	idx, err = os.Open(SidecarPath(path))
	if err != nil {
		idx = nil // missing sidecar is tolerated.
	}

	var idxReader io.Reader
	if idx != nil {
		idxReader = idx
	}

	d, err = Open(f, idxReader, log)

	closeAll := func() error {
		err := f.Close()
		if idx != nil {
			if cerr := idx.Close(); err == nil {
				err = cerr
			}
		}
		return err
	}

	if err != nil {
		closeAll()
		return nil, nil, err
	}

	return d, closerFunc(closeAll), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func seekAlign(r io.Seeker, align int64) error {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	aligned := (pos + align - 1) &^ (align - 1)
	_, err = r.Seek(aligned, io.SeekStart)
	return err
}

// ReadPacket reads the next record from the stream. It returns io.EOF
// (check with errors.Is) once the stream is exhausted.
//
// A frame record with a non-empty audio block produces two packets from
// two separate ReadPacket calls: the audio packet first, then that same
// frame's video packet, matching the original's persistent
// READ_FRAME_HEADER -> READ_AUDIO_BLOCK -> READ_VIDEO_BLOCK state machine
// rather than reading both in one call.
func (d *Demuxer) ReadPacket() (*Packet, error) {
	if d.pendingVideo != nil {
		fh := d.pendingVideo
		d.pendingVideo = nil
		return d.readVideoBlock(fh)
	}

	fh, err := readFrameHeader(d.r)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}

	audioPkt, err := d.readAudioBlock(fh)
	if err != nil {
		return nil, err
	}
	if audioPkt != nil {
		d.pendingVideo = fh
		return &Packet{Kind: KindAudio, Audio: audioPkt}, nil
	}

	return d.readVideoBlock(fh)
}

func (d *Demuxer) readAudioBlock(fh *frameHeader) (*AudioPacket, error) {
	if !d.hasAudio {
		if err := seekAlign(d.r, frameAlign); err != nil {
			return nil, fmt.Errorf("pv3: aligning past empty audio block: %w", err)
		}
		return nil, nil
	}

	if fh.sampleRate > maxAudioSampleRate {
		return nil, fmt.Errorf("%w: audio sample rate %d Hz exceeds %d Hz", ErrUnsupported, fh.sampleRate, maxAudioSampleRate)
	}

	block := make([]byte, int(fh.audioFrameCount)*4)
	if _, err := io.ReadFull(d.r, block); err != nil {
		return nil, fmt.Errorf("pv3: reading audio block: %w", err)
	}
	if err := seekAlign(d.r, frameAlign); err != nil {
		return nil, fmt.Errorf("pv3: aligning past audio block: %w", err)
	}

	pkt, err := d.audio.demuxAudioBlock(block)
	d.audio.accumFrameCount += uint64(fh.audioFrameCount)
	if err != nil {
		return nil, fmt.Errorf("pv3: demuxing audio block: %w", err)
	}
	return pkt, nil
}

func (d *Demuxer) readVideoBlock(fh *frameHeader) (*Packet, error) {
	nbBlocks := 2
	if d.Header.Interlaced {
		nbBlocks = 4
	}

	for i := 0; i < nbBlocks; i++ {
		if fh.videoBlockSize[i] > maxVideoBlockSize {
			return nil, fmt.Errorf("%w: video block %d size %d exceeds %d", ErrInvalidData, i, fh.videoBlockSize[i], maxVideoBlockSize)
		}
	}

	blocks := make([][]byte, nbBlocks)
	for i := 0; i < nbBlocks; i++ {
		blocks[i] = make([]byte, fh.videoBlockSize[i])
		if _, err := io.ReadFull(d.r, blocks[i]); err != nil {
			return nil, fmt.Errorf("pv3: reading video block %d: %w", i, err)
		}
		if i < nbBlocks-1 {
			if err := seekAlign(d.r, blockAlign); err != nil {
				return nil, fmt.Errorf("pv3: aligning past video block %d: %w", i, err)
			}
		}
	}
	if err := seekAlign(d.r, frameAlign); err != nil {
		return nil, fmt.Errorf("pv3: aligning past frame record: %w", err)
	}

	sarNum, sarDen := d.SampleAspectRatio(fh.dar)

	vp := &VideoPacket{
		Blocks:          blocks,
		PTS:             int64(d.frameCurrent),
		DAR:             fh.dar,
		EncodingQ:       fh.encodingQ,
		SampleAspectNum: sarNum,
		SampleAspectDen: sarDen,
	}

	d.frameCurrent++
	if d.indexPos < len(d.index) {
		d.indexPos++
	}

	return &Packet{Kind: KindVideo, Video: vp}, nil
}

// Seek repositions the Demuxer at the start of the given frame index,
// using the sidecar seek index. It fails if no index was loaded.
func (d *Demuxer) Seek(frame int) error {
	if len(d.index) == 0 {
		return fmt.Errorf("%w: cannot seek without a sidecar index", ErrUnsupported)
	}
	if frame < 0 || frame >= len(d.index) {
		return fmt.Errorf("%w: frame %d out of range [0,%d)", ErrInvalidData, frame, len(d.index))
	}

	if _, err := d.r.Seek(d.index[frame].FrameOffset, io.SeekStart); err != nil {
		return fmt.Errorf("pv3: seeking: %w", err)
	}

	d.frameCurrent = frame
	d.indexPos = frame
	d.pendingVideo = nil
	return nil
}

// Duration returns the stream's total frame count, if a sidecar index was
// loaded.
func (d *Demuxer) Duration() (frames int, ok bool) {
	if len(d.index) == 0 {
		return 0, false
	}
	return len(d.index), true
}

// AudioFrameCount returns the stream's total audio frame count, if a
// sidecar index was loaded.
func (d *Demuxer) AudioFrameCount() (frames uint64, ok bool) {
	if len(d.index) == 0 {
		return 0, false
	}
	return lastAudioFrameCount(d.index), true
}

// SampleAspectRatio derives a pixel aspect ratio from a frame's display
// aspect ratio and the stream's picture dimensions, reproducing the
// original demuxer's av_reduce call: width*height/dar.Den reduced against
// width*width/dar.Num. The asymmetry (height appears in the numerator
// term but not the denominator term) looks like a transcription slip in
// the 2009-2013 original, annotated there with "XXX", but no corrected
// formula is ever exercised by it there either; it is carried through
// unchanged rather than guessed at. Reduction uses math/big.Rat in place
// of av_reduce's bounded continued-fraction search, clamped to the same
// 1024*1024 maximum term.
func (d *Demuxer) SampleAspectRatio(dar Rational) (num, den int) {
	width, height := d.Header.Width, d.Header.Height

	if dar.Num == 0 || dar.Den == 0 || width == 0 {
		return 1, 1
	}

	n := int64(width) * int64(height) / int64(dar.Den)
	den64 := int64(width) * int64(width) / int64(dar.Num)
	if n == 0 || den64 == 0 {
		return 1, 1
	}

	r := big.NewRat(n, den64)

	const limit = 1024 * 1024
	for r.Num().IsInt64() && r.Num().Int64() > limit || r.Denom().IsInt64() && r.Denom().Int64() > limit {
		n, den64 = n/2, den64/2
		if n == 0 || den64 == 0 {
			return 1, 1
		}
		r = big.NewRat(n, den64)
	}

	return int(r.Num().Int64()), int(r.Denom().Int64())
}
