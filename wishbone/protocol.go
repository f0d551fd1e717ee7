// Package wishbone drives peripherals on an FPGA Wishbone bus that is reached
// through an SPI link from the companion microcontroller.
package wishbone

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Opcodes understood by the SPI-to-Wishbone bridge.
const (
	OpSetColor byte = 0x01
	OpWriteReg byte = 0x02
	OpReadReg  byte = 0x03
)

// FrameSize is the wire length of every frame: opcode plus three payload bytes.
const FrameSize = 4

// Frame is one command sent to the bridge. Frames are built per call and not retained.
type Frame struct {
	Opcode  byte
	Payload [3]byte
}

// Bytes encodes the frame in wire order.
func (f Frame) Bytes() []byte {
	buf := make([]byte, 0, FrameSize)
	buf = append(buf, f.Opcode)
	buf = append(buf, f.Payload[:]...)
	return buf
}

// ParseFrame decodes a wire-format frame.
func ParseFrame(data []byte) (Frame, error) {
	if len(data) != FrameSize {
		return Frame{}, fmt.Errorf("frame length: got %d, want %d", len(data), FrameSize)
	}
	var f Frame
	f.Opcode = data[0]
	copy(f.Payload[:], data[1:])
	return f, nil
}

// ColorFrame creates a set-color frame. Channels are sent most significant first (R, G, B).
func ColorFrame(c Color) Frame {
	return Frame{
		Opcode:  OpSetColor,
		Payload: [3]byte{c.R(), c.G(), c.B()},
	}
}

// DecodeColor reconstructs the color carried by a set-color frame.
func DecodeColor(f Frame) (Color, error) {
	if f.Opcode != OpSetColor {
		return 0, fmt.Errorf("not a set-color frame: opcode 0x%02X", f.Opcode)
	}
	return RGB(f.Payload[0], f.Payload[1], f.Payload[2]), nil
}

// WriteRegFrame creates a register write frame. The address is big-endian.
func WriteRegFrame(addr uint16, value byte) Frame {
	f := Frame{Opcode: OpWriteReg}
	binary.BigEndian.PutUint16(f.Payload[:2], addr)
	f.Payload[2] = value
	return f
}

// ReadRegFrame creates a register read frame. The value is clocked back in the
// last byte of the reply.
func ReadRegFrame(addr uint16) Frame {
	f := Frame{Opcode: OpReadReg}
	binary.BigEndian.PutUint16(f.Payload[:2], addr)
	return f
}

// RegisterAddress returns the address carried by a register frame.
func (f Frame) RegisterAddress() (uint16, error) {
	if f.Opcode != OpWriteReg && f.Opcode != OpReadReg {
		return 0, errors.New("not a register frame")
	}
	return binary.BigEndian.Uint16(f.Payload[:2]), nil
}
