/*
DESCRIPTION
  audio_test.go provides testing for functionality in audio.go.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pv3

import (
	"bytes"
	"errors"
	"testing"
)

func ac3Burst(payloadSize int) []byte {
	buf := make([]byte, 8+payloadSize)
	copy(buf, burstPreamble[:])
	buf[4], buf[5] = 0x00, 0x01 // Pc: data type 0x01 (AC-3).
	return buf
}

func TestScanBurstPreamble(t *testing.T) {
	buf := make([]byte, 20)
	copy(buf[10:], burstPreamble[:])

	ofs, found := scanBurstPreamble(buf)
	if !found || ofs != 10 {
		t.Fatalf("scanBurstPreamble = (%d,%v), want (10,true)", ofs, found)
	}
}

func TestScanBurstPreambleNotFound(t *testing.T) {
	_, found := scanBurstPreamble(make([]byte, 20))
	if found {
		t.Fatalf("expected no preamble found in an all-zero buffer")
	}
}

func TestClassifyBurstAC3(t *testing.T) {
	codec, size, ok, err := classifyBurst(0x01)
	if err != nil || !ok {
		t.Fatalf("classifyBurst(0x01) = (_,_,%v,%v), want ok, no error", ok, err)
	}
	if codec != AudioCodecAC3 || size != 1536*4 {
		t.Errorf("classifyBurst(0x01) = (%v,%d), want (AC3,6144)", codec, size)
	}
}

func TestClassifyBurstEAC3(t *testing.T) {
	codec, size, ok, err := classifyBurst(0x15)
	if err != nil || !ok {
		t.Fatalf("classifyBurst(0x15) unexpected error/ok: %v %v", err, ok)
	}
	if codec != AudioCodecEAC3 || size != 6144*4 {
		t.Errorf("classifyBurst(0x15) = (%v,%d), want (EAC3,24576)", codec, size)
	}
}

func TestClassifyBurstAACSubtypes(t *testing.T) {
	tests := []struct {
		pc   uint16
		want int
	}{
		{0x14, 1024 * 4},        // subtype 0
		{0x14 | (1 << 5), 2048 * 4}, // subtype 1
		{0x14 | (2 << 5), 4096 * 4}, // subtype 2
		{0x14 | (3 << 5), 512 * 4},  // subtype 3
	}
	for _, tc := range tests {
		codec, size, ok, err := classifyBurst(tc.pc)
		if err != nil || !ok || codec != AudioCodecAAC || size != tc.want {
			t.Errorf("classifyBurst(%#x) = (%v,%d,%v,%v), want (AAC,%d,true,nil)", tc.pc, codec, size, ok, err, tc.want)
		}
	}
}

func TestClassifyBurstNullAndPauseIgnored(t *testing.T) {
	for _, pc := range []uint16{0x00, 0x03} {
		_, _, ok, err := classifyBurst(pc)
		if err != nil || ok {
			t.Errorf("classifyBurst(%#x) = (_,_,%v,%v), want (false,nil)", pc, ok, err)
		}
	}
}

func TestClassifyBurstUnsupported(t *testing.T) {
	_, _, ok, err := classifyBurst(0x05)
	if ok || !errors.Is(err, ErrUnsupported) {
		t.Fatalf("classifyBurst(0x05) = (_,_,%v,%v), want (false, ErrUnsupported)", ok, err)
	}
}

func TestDemuxAudioBlockAC3Reassembly(t *testing.T) {
	var s audioState

	// A single AC-3 burst payload of exactly 1536*4 bytes, delivered in
	// two audio blocks so the FIFO must bridge them.
	full := ac3Burst(1536 * 4)
	first, second := full[:len(full)/2], full[len(full)/2:]

	pkt, err := s.demuxAudioBlock(first)
	if err != nil {
		t.Fatalf("first demuxAudioBlock returned error: %v", err)
	}
	if pkt != nil {
		t.Fatalf("expected no packet yet from a partial AC-3 burst, got %+v", pkt)
	}

	pkt, err = s.demuxAudioBlock(second)
	if err != nil {
		t.Fatalf("second demuxAudioBlock returned error: %v", err)
	}
	if pkt == nil {
		t.Fatalf("expected a completed AC-3 packet")
	}
	if pkt.Codec != AudioCodecAC3 {
		t.Errorf("Codec = %v, want AC3", pkt.Codec)
	}
	if len(pkt.Data) != 1536*4 {
		t.Errorf("len(Data) = %d, want %d", len(pkt.Data), 1536*4)
	}
	// The reassembled packet is the burst payload alone: the 8-byte
	// sync-word-and-Pc/Pd header is stripped before buffering.
	if !bytes.Equal(pkt.Data, full[8:]) {
		t.Errorf("reassembled AC-3 packet does not match the original burst payload")
	}
}

func TestDemuxAudioBlockFallsBackToPCM(t *testing.T) {
	var s audioState

	block := make([]byte, 400) // no burst preamble anywhere in it.
	var pkt *AudioPacket
	var err error
	for i := 0; i < forcePCMLimit/len(block)+2; i++ {
		pkt, err = s.demuxAudioBlock(block)
		if err != nil {
			t.Fatalf("demuxAudioBlock returned error: %v", err)
		}
		if pkt != nil {
			break
		}
	}
	if pkt == nil {
		t.Fatalf("expected a PCM packet once forcePCMLimit bytes were buffered without a burst preamble")
	}
	if pkt.Codec != AudioCodecPCM {
		t.Errorf("Codec = %v, want PCM", pkt.Codec)
	}
	if s.codec != AudioCodecPCM {
		t.Errorf("subsequent blocks should stay locked to PCM")
	}
}

func TestDemuxAudioBlockOverflow(t *testing.T) {
	var s audioState
	s.fifo = make([]byte, demuxRawAudioBufferSize)

	_, err := s.demuxAudioBlock(make([]byte, 10))
	if !errors.Is(err, ErrInvalidData) {
		t.Fatalf("err = %v, want ErrInvalidData", err)
	}
}
