package sim

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/betz-engineering/uiboard.go/pkg/board/control"
	"github.com/betz-engineering/uiboard.go/pkg/board/frame"
)

func drain(h *Host, now time.Time) time.Time {
	for h.Endpoint.Available() {
		h.Core.Assembler().Poll(now)
		now = now.Add(time.Millisecond)
	}
	return now
}

func TestFrameDelivery(t *testing.T) {
	b := NewBoard("v0-test")
	h := NewHost(b)

	fb := make([]byte, frame.FrameSize)
	for i := range fb {
		fb[i] = byte(i)
	}
	require.NoError(t, h.SendFrame(fb))

	now := drain(h, time.Now())
	require.Equal(t, fb, b.Framebuffer())
	require.Equal(t, 1, b.Frames())

	// A second frame after an idle gap overwrites the first.
	for i := range fb {
		fb[i] = byte(i * 3)
	}
	require.NoError(t, h.SendFrame(fb))
	drain(h, now.Add(frame.SyncTimeout+time.Millisecond))
	require.Equal(t, fb, b.Framebuffer())
	require.Equal(t, 2, b.Frames())
}

func TestTrailingBytesDropped(t *testing.T) {
	b := NewBoard("v0-test")
	h := NewHost(b)

	fb := make([]byte, frame.FrameSize)
	for i := range fb {
		fb[i] = 0xa5
	}
	require.NoError(t, h.SendFrame(fb))
	// Stray trailing bytes with no intervening gap.
	_, err := h.Endpoint.Write(make([]byte, 200))
	require.NoError(t, err)

	drain(h, time.Now())
	require.Equal(t, fb, b.Framebuffer())
	require.Equal(t, 1, b.Frames())
}

func TestControlRoundTrip(t *testing.T) {
	b := NewBoard("v1.0-7-g1234567")
	h := NewHost(b)

	data, err := h.Do(control.Request{ID: control.CmdVersion})
	require.NoError(t, err)
	require.Equal(t, "v1.0-7-g1234567", string(data))

	_, err = h.Do(control.Request{ID: control.CmdLEDs, Value: 0x73})
	require.NoError(t, err)
	require.Equal(t, uint16(0x73), b.LEDMask())

	_, err = h.Do(control.Request{ID: control.CmdBrightness, Value: 200})
	require.NoError(t, err)
	require.Equal(t, byte(control.MaxBrightness), b.Brightness())

	_, err = h.Do(control.Request{ID: control.CmdInverted, Value: 1})
	require.NoError(t, err)
	require.True(t, b.Inverted())

	_, err = h.Do(control.Request{ID: control.CmdReset})
	require.NoError(t, err)
	require.Equal(t, 1, b.Resets())
	require.Equal(t, uint16(0), b.LEDMask())
	require.False(t, b.Inverted())

	_, err = h.Do(control.Request{ID: 0x42})
	require.Equal(t, ErrRejected, err)
}

func TestEncoderConsumeConcurrent(t *testing.T) {
	b := NewBoard("v0-test")
	h := NewHost(b)

	// 100 ticks keep the accumulator well inside int8 range even if the
	// reader never gets scheduled.
	const ticks = 100
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < ticks; i++ {
			b.Turn(1)
		}
	}()

	// Concurrent reads must neither lose nor double count ticks.
	var total int
	for i := 0; total < ticks && i < 10*ticks; i++ {
		data, err := h.Do(control.Request{ID: control.CmdButtonsEnc})
		require.NoError(t, err)
		require.Len(t, data, 2)
		total += int(int8(data[1]))
	}
	wg.Wait()
	data, err := h.Do(control.Request{ID: control.CmdButtonsEnc})
	require.NoError(t, err)
	total += int(int8(data[1]))
	require.Equal(t, ticks, total)
}
