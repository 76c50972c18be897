package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testEndpoint struct {
	pending []byte
}

func (e *testEndpoint) Available() bool {
	return len(e.pending) > 0
}

func (e *testEndpoint) Read(p []byte) int {
	n := copy(p, e.pending)
	e.pending = e.pending[n:]
	return n
}

type sinkWrite struct {
	first bool
	data  []byte
}

type testSink struct {
	writes []sinkWrite
	total  int
}

func (s *testSink) WriteChunk(first bool, p []byte) {
	data := make([]byte, len(p))
	copy(data, p)
	s.writes = append(s.writes, sinkWrite{first: first, data: data})
	s.total += len(p)
}

// assemblerStep delivers one burst of bytes after a gap and states
// expectations about the resulting sink writes. Bursts larger than
// ChunkSize take several polls to drain, all at the same timestamp.
type assemblerStep struct {
	gap     time.Duration
	burst   []byte
	written bool // whether any sink write is expected
	first   bool // first tag of the earliest write in this step
	offset  int  // cursor after the burst
}

type assemblerStepBuilder struct {
	steps []assemblerStep
}

func assemblerSteps() *assemblerStepBuilder {
	return &assemblerStepBuilder{}
}

func (b *assemblerStepBuilder) send(gap time.Duration, n int) *assemblerStepBuilder {
	b.steps = append(b.steps, assemblerStep{gap: gap, burst: make([]byte, n)})
	return b
}

func (b *assemblerStepBuilder) written(first bool, offset int) *assemblerStepBuilder {
	s := &b.steps[len(b.steps)-1]
	s.written, s.first, s.offset = true, first, offset
	return b
}

func (b *assemblerStepBuilder) dropped(offset int) *assemblerStepBuilder {
	b.steps[len(b.steps)-1].offset = offset
	return b
}

func (b *assemblerStepBuilder) build() []assemblerStep {
	return b.steps
}

func TestAssembler(t *testing.T) {
	const tick = time.Millisecond

	testCases := []struct {
		name  string
		steps []assemblerStep
	}{
		{
			name: "single frame in chunks",
			steps: assemblerSteps().
				send(0, 64).written(true, 64).
				send(tick, 64).written(false, 128).
				send(tick, 64).written(false, 192).
				build(),
		},
		{
			name: "gap resyncs to offset zero",
			steps: assemblerSteps().
				send(0, 100).written(true, 100).
				send(5*time.Millisecond, 50).written(true, 50).
				build(),
		},
		{
			name: "gap equal to timeout does not resync",
			steps: assemblerSteps().
				send(0, 64).written(true, 64).
				send(SyncTimeout, 64).written(false, 128).
				build(),
		},
		{
			name: "overflow dropped until resync",
			steps: assemblerSteps().
				send(0, FrameSize).written(true, FrameSize).
				send(tick, 64).dropped(FrameSize).
				send(tick, 64).dropped(FrameSize).
				send(5*time.Millisecond, 64).written(true, 64).
				build(),
		},
		{
			name: "chunk clamped at frame boundary",
			steps: assemblerSteps().
				send(0, FrameSize-10).written(true, FrameSize-10).
				send(tick, 64).written(false, FrameSize).
				send(tick, 64).dropped(FrameSize).
				build(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			endpoint := &testEndpoint{}
			sink := &testSink{}
			asm := NewAssembler(endpoint, sink)
			now := time.Now()
			for n, step := range tc.steps {
				now = now.Add(step.gap)
				endpoint.pending = step.burst
				prev := len(sink.writes)
				for endpoint.Available() {
					before := len(sink.writes)
					asm.Poll(now)
					require.LessOrEqualf(t, len(sink.writes)-before, 1,
						"step[%d] more than one write per poll", n)
				}
				require.Equalf(t, step.offset, asm.Offset(), "step[%d] offset", n)
				if step.written {
					require.Greaterf(t, len(sink.writes), prev, "step[%d] expected writes", n)
					require.Equalf(t, step.first, sink.writes[prev].first, "step[%d] first tag", n)
				} else {
					require.Equalf(t, prev, len(sink.writes), "step[%d] unexpected writes", n)
				}
			}
		})
	}
}

func TestAssemblerIdlePoll(t *testing.T) {
	endpoint := &testEndpoint{}
	sink := &testSink{}
	asm := NewAssembler(endpoint, sink)

	// No data: no side effects, no writes, no cursor movement.
	now := time.Now()
	for i := 0; i < 10; i++ {
		asm.Poll(now.Add(time.Duration(i) * time.Second))
	}
	require.Empty(t, sink.writes)
	require.Equal(t, 0, asm.Offset())
}

func TestAssemblerFullFrame(t *testing.T) {
	endpoint := &testEndpoint{}
	sink := &testSink{}
	asm := NewAssembler(endpoint, sink)

	// 8192 bytes in 128 chunks of 64, gaps below the timeout.
	now := time.Now()
	for i := 0; i < FrameSize/ChunkSize; i++ {
		now = now.Add(time.Millisecond)
		endpoint.pending = make([]byte, ChunkSize)
		asm.Poll(now)
	}
	require.Equal(t, FrameSize, asm.Offset())
	require.Equal(t, FrameSize, sink.total)
	require.Len(t, sink.writes, FrameSize/ChunkSize)
	for n, w := range sink.writes {
		require.Equalf(t, n == 0, w.first, "writes[%d] first tag", n)
	}
}

func TestAssemblerFirstOncePerRun(t *testing.T) {
	endpoint := &testEndpoint{}
	sink := &testSink{}
	asm := NewAssembler(endpoint, sink)

	// Three maximal runs of gap-bounded chunks: first must be tagged
	// exactly once per run.
	now := time.Now()
	for run := 0; run < 3; run++ {
		now = now.Add(10 * time.Millisecond)
		for i := 0; i < 5; i++ {
			endpoint.pending = make([]byte, 48)
			asm.Poll(now)
			now = now.Add(time.Millisecond)
		}
	}
	var firsts int
	for _, w := range sink.writes {
		if w.first {
			firsts++
		}
	}
	require.Equal(t, 3, firsts)
	require.Equal(t, 3*5*48, sink.total)
}

func TestAssemblerPartialFrameOverwritten(t *testing.T) {
	endpoint := &testEndpoint{}
	sink := &testSink{}
	asm := NewAssembler(endpoint, sink)

	// A truncated frame is never detected, the next full frame simply
	// starts over at the origin.
	now := time.Now()
	endpoint.pending = make([]byte, 100)
	asm.Poll(now)
	require.Equal(t, 100, asm.Offset())

	now = now.Add(SyncTimeout + time.Millisecond)
	endpoint.pending = make([]byte, 50)
	asm.Poll(now)
	require.Equal(t, 50, asm.Offset())
	last := sink.writes[len(sink.writes)-1]
	require.True(t, last.first)
	require.Len(t, last.data, 50)
}
