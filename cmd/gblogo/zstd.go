package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/shirou/gopsutil/v3/mem"
)

type zstdInfo struct {
	memory        *uint64
	level         zstd.EncoderLevel
	threads       byte
	memoryPercent bool
	forceAuto     bool
}

// handleZstd parses the --zstd= value: "auto", or a comma separated list
// of l=, t= and m= params.
func handleZstd(s string) (*zstdInfo, error) {
	if len(s) == 0 || s == "auto" {
		return &zstdInfo{
			forceAuto: true,
		}, nil
	}
	i := &zstdInfo{
		level:   zstd.SpeedDefault,
		threads: 1,
	}
	for _, param := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(param, "=")
		if !ok {
			if len(key) == 0 {
				return nil, errors.New("empty zstd param")
			}
			return nil, fmt.Errorf("expected '=' after %q", key)
		}
		switch key {
		case "l":
			switch value {
			case "low":
				i.level = zstd.SpeedFastest
			case "mid":
				i.level = zstd.SpeedDefault
			case "high":
				i.level = zstd.SpeedBetterCompression
			default:
				return nil, fmt.Errorf("expected 'low', 'mid' or 'high' after 'l=', got %q", value)
			}
		case "t":
			v, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("expected number after 't=', got %q", value)
			}
			i.threads = byte(min(255, v))
		case "m":
			if err := i.parseMemory(value); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("expected 'l', 't', 'm' or 'auto', got %q", key)
		}
	}
	return i, nil
}

func (i *zstdInfo) parseMemory(value string) error {
	s := strings.TrimSuffix(value, "B")
	shift := 0
	switch {
	case strings.HasSuffix(s, "%"):
		i.memoryPercent = true
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "G"):
		shift, s = 30, s[:len(s)-1]
	case strings.HasSuffix(s, "M"):
		shift, s = 20, s[:len(s)-1]
	case strings.HasSuffix(s, "K"):
		shift, s = 10, s[:len(s)-1]
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return fmt.Errorf("expected size after 'm=', got %q", value)
	}
	i.memory = new(uint64)
	*i.memory = v << shift
	return nil
}

func (i *zstdInfo) validateParameters(size uint64, isWrite bool) error {
	freeMem, err := mem.VirtualMemory()
	if err != nil {
		return err
	}
	if i.forceAuto {
		maxThreadsByMem := max(1, int(freeMem.Available/(10<<20))) // 10MB per thread
		i.threads = byte(min(runtime.NumCPU(), maxThreadsByMem, 4))

		if isWrite {
			switch {
			case size < 1<<20:
				i.level = zstd.SpeedFastest
			case size < 10<<20:
				i.level = zstd.SpeedDefault
			default:
				i.level = zstd.SpeedBetterCompression
			}
		}
		i.memory = new(uint64)
		*i.memory = uint64(float64(freeMem.Available) * 0.7)
	} else {
		if i.threads == 0 {
			i.threads = byte(runtime.NumCPU())
		} else {
			i.threads = byte(min(runtime.NumCPU(), int(i.threads)))
		}
		if i.memoryPercent {
			i.memoryPercent = false
			*i.memory = uint64(float64(freeMem.Available) / 100 * min(float64(*i.memory), 100))
		}
	}
	if i.memory == nil {
		i.memory = new(uint64)
		*i.memory = 4 << 30 // 4GB
	}
	if isWrite {
		if size > 0 {
			*i.memory = min(*i.memory, size)
		}
		if n := *i.memory; n != 0 {
			n |= n >> 1
			n |= n >> 2
			n |= n >> 4
			n |= n >> 8
			n |= n >> 16
			n |= n >> 32
			*i.memory = n - (n >> 1)
		}
		*i.memory = min(zstd.MaxWindowSize, max(zstd.MinWindowSize, *i.memory))
	} else {
		i.threads = min(i.threads, 4)
		*i.memory = min(1<<63, max(1<<10, *i.memory))
	}
	return nil
}

// wrapWriter returns w unchanged when compression is off. The returned
// closer flushes the zstd frame and must be closed before c.
func (i *zstdInfo) wrapWriter(w io.Writer, size uint64) (io.Writer, io.Closer, error) {
	if i == nil {
		return w, nil, nil
	}

	if err := i.validateParameters(size, true); err != nil {
		return nil, nil, err
	}

	zw, err := zstd.NewWriter(
		w,
		zstd.WithWindowSize(int(*i.memory)),
		zstd.WithEncoderLevel(i.level),
		zstd.WithEncoderConcurrency(int(i.threads)),
	)
	if err != nil {
		return nil, nil, err
	}
	return zw, zw, nil
}

var zstdMagic = [4]byte{0x28, 0xb5, 0x2f, 0xfd}

type zstdReadWrapper struct {
	r   io.Reader
	tmp []byte
}

func (w *zstdReadWrapper) Read(b []byte) (int, error) {
	if w.tmp != nil {
		n := copy(b, w.tmp)
		if n == len(w.tmp) {
			w.tmp = nil
		} else {
			w.tmp = w.tmp[n:]
		}
		return n, nil
	}
	return w.r.Read(b)
}

// wrapReader detects a zstd frame by its magic number. Input without one
// is passed through untouched, so a nil receiver still decompresses.
func (i *zstdInfo) wrapReader(r io.Reader) (io.Reader, io.Closer, error) {
	var buf [4]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, nil, err
	}
	r = &zstdReadWrapper{
		r:   r,
		tmp: buf[:n],
	}
	if n < len(buf) || buf != zstdMagic {
		return r, nil, nil
	}
	if i == nil {
		i = &zstdInfo{
			forceAuto: true,
		}
	}

	if err := i.validateParameters(0, false); err != nil {
		return nil, nil, err
	}

	zr, err := zstd.NewReader(
		r,
		zstd.WithDecoderConcurrency(int(i.threads)),
		zstd.WithDecoderMaxMemory(*i.memory),
	)
	if err != nil {
		return nil, nil, err
	}
	rc := zr.IOReadCloser()
	return rc, rc, nil
}
