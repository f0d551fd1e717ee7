//go:build linux && !baremetal

package transports

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
	"tinygo.org/x/drivers"

	"github.com/Papilio-Labs/papilio-project-template/wishbone"
)

// spidev ioctl requests from linux/spi/spidev.h.
const (
	spiIOCWrMode        = 0x40016b01
	spiIOCWrBitsPerWord = 0x40016b03
	spiIOCWrMaxSpeedHz  = 0x40046b04
	spiIOCMessage1      = 0x40206b00
)

// spiIOCTransfer mirrors struct spi_ioc_transfer.
type spiIOCTransfer struct {
	txBuf          uint64
	rxBuf          uint64
	length         uint32
	speedHz        uint32
	delayUsecs     uint16
	bitsPerWord    uint8
	csChange       uint8
	txNbits        uint8
	rxNbits        uint8
	wordDelayUsecs uint8
	pad            uint8
}

// SPIDev implements wishbone.Driver on a Linux spidev character device.
// The kernel drives the select line for the device node, so pin numbers are only
// validated, not configured.
type SPIDev struct {
	device string
	file   *os.File
}

// NewSPIDev returns a driver for a device node such as "/dev/spidev1.0".
func NewSPIDev(device string) (*SPIDev, error) {
	if device == "" {
		return nil, errors.New("spidev device path is required")
	}
	return &SPIDev{device: device}, nil
}

// Device returns the device node path.
func (d *SPIDev) Device() string {
	return d.device
}

func (d *SPIDev) ConfigureSPI(cfg wishbone.SPIConfig) (drivers.SPI, error) {
	f, err := os.OpenFile(d.device, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open spidev: %w", err)
	}

	mode := cfg.Mode
	bits := uint8(8)
	speed := cfg.ClockHz

	if err := ioctl(f.Fd(), spiIOCWrMode, unsafe.Pointer(&mode)); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set mode: %w", err)
	}
	if err := ioctl(f.Fd(), spiIOCWrBitsPerWord, unsafe.Pointer(&bits)); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set bits per word: %w", err)
	}
	if err := ioctl(f.Fd(), spiIOCWrMaxSpeedHz, unsafe.Pointer(&speed)); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set clock: %w", err)
	}

	d.file = f
	return &spidevLink{file: f, speedHz: speed}, nil
}

func (d *SPIDev) ConfigureOutput(pin int) (wishbone.Pin, error) {
	return kernelSelect{}, nil
}

func (d *SPIDev) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

type spidevLink struct {
	file    *os.File
	speedHz uint32
}

func (l *spidevLink) Tx(w, r []byte) error {
	x := newExchange(w, r)
	if x.len() == 0 {
		return nil
	}

	xfer := spiIOCTransfer{
		txBuf:       uint64(uintptr(unsafe.Pointer(&x.tx[0]))),
		rxBuf:       uint64(uintptr(unsafe.Pointer(&x.rx[0]))),
		length:      uint32(x.len()),
		speedHz:     l.speedHz,
		bitsPerWord: 8,
	}

	got, _, errno := unix.Syscall(unix.SYS_IOCTL, l.file.Fd(), spiIOCMessage1, uintptr(unsafe.Pointer(&xfer)))
	runtime.KeepAlive(x.tx)
	runtime.KeepAlive(x.rx)
	if errno != 0 {
		return fmt.Errorf("spi transfer: %w", errno)
	}
	return x.finish(int(got))
}

func (l *spidevLink) Transfer(b byte) (byte, error) {
	r := []byte{0}
	err := l.Tx([]byte{b}, r)
	return r[0], err
}

// kernelSelect stands in for a select pin owned by the spidev driver.
type kernelSelect struct{}

func (kernelSelect) High() {}
func (kernelSelect) Low()  {}

func ioctl(fd uintptr, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
