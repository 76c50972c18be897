package main

import (
	"context"
	"flag"
	"time"

	"github.com/golang/glog"

	"github.com/betz-engineering/uiboard.go/pkg/board/control"
	"github.com/betz-engineering/uiboard.go/pkg/board/frame"
	fx "github.com/betz-engineering/uiboard.go/pkg/framework"
	"github.com/betz-engineering/uiboard.go/pkg/sim"
)

//go-build: CGO_ENABLED=0

var (
	frames   = 10
	interval = 20 * time.Millisecond
)

func init() {
	flag.IntVar(&frames, "frames", frames, "Number of frames to stream.")
	flag.DurationVar(&interval, "interval", interval, "Delay between frames.")
}

// demo streams frames and exercises the control path against the
// simulated board, then stops the loop.
type demo struct {
	board  *sim.Board
	host   *sim.Host
	cancel func()
}

func (d *demo) Run(ctx context.Context) error {
	defer d.cancel()

	for n := 0; n < frames; n++ {
		fb := make([]byte, frame.FrameSize)
		shade := byte(n % 16)
		for i := range fb {
			fb[i] = shade<<4 | shade
		}
		if err := d.host.SendFrame(fb); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
		glog.Infof("frame %d: device saw %d frame starts, cursor %d",
			n, d.board.Frames(), d.host.Core.Assembler().Offset())
	}

	d.board.Turn(3)
	data, err := d.host.Do(control.Request{ID: control.CmdButtonsEnc})
	if err != nil {
		return err
	}
	glog.Infof("inputs: buttons %#02x encoder %+d", data[0], int8(data[1]))

	if _, err := d.host.Do(control.Request{ID: control.CmdBrightness, Value: 8}); err != nil {
		return err
	}
	glog.Infof("brightness now %d", d.board.Brightness())
	return nil
}

func main() {
	flag.Parse()

	board := sim.NewBoard("sim")
	host := sim.NewHost(board)

	ctx, cancel := context.WithCancel(context.Background())
	loop := fx.NewLoop().Add(host.Core)
	// At 64 bytes per poll the tick must outpace the host's frame rate,
	// or back-to-back frames merge with no observable bus silence.
	loop.Interval = 50 * time.Microsecond

	runner := fx.NewRunnerWith(ctx)
	runner.Go(fx.NamedRun("loop", loop), fx.NamedRun("demo", &demo{board: board, host: host, cancel: cancel}))
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
	glog.Infof("done: %d frames delivered", board.Frames())
	glog.Flush()
}
