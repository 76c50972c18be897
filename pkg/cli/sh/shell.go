// Package sh provides an ishell backed interactive board shell.
package sh

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/betz-engineering/uiboard.go/pkg/host"
)

// Shell wraps an open board with interactive commands.
type Shell struct {
	Board *host.Board
	Shell *ishell.Shell
}

const shellKey = "$shell"

// New creates a shell over an open board.
func New(b *host.Board) *Shell {
	s := &Shell{Board: b, Shell: ishell.New()}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt("ui_to_usb > ")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// Run runs the shell until exit.
func (s *Shell) Run() {
	if version, err := s.Board.FirmwareVersion(); err == nil {
		s.Shell.Printf("connected, firmware %s\n", version)
	}
	s.Shell.Run()
}

func shellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

func argLevel(c *ishell.Context, n int, max uint64) (byte, bool) {
	if len(c.Args) <= n {
		c.Err(fmt.Errorf("missing argument"))
		return 0, false
	}
	v, err := strconv.ParseUint(c.Args[n], 0, 8)
	if err != nil || v > max {
		c.Err(fmt.Errorf("value %q out of range 0-%d", c.Args[n], max))
		return 0, false
	}
	return byte(v), true
}

var commands = []*ishell.Cmd{
	{
		Name: "version",
		Help: "print firmware version",
		Func: func(c *ishell.Context) {
			version, err := shellFrom(c).Board.FirmwareVersion()
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(version)
		},
	},
	{
		Name: "reset",
		Help: "reinitialize the board",
		Func: func(c *ishell.Context) {
			if err := shellFrom(c).Board.Reset(); err != nil {
				c.Err(err)
			}
		},
	},
	{
		Name: "inputs",
		Help: "read buttons and encoder delta",
		Func: func(c *ishell.Context) {
			state, err := shellFrom(c).Board.Inputs()
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("buttons %#02x encoder %+d\n", state.Flags, state.EncoderDelta)
		},
	},
	{
		Name: "led",
		Help: "INDEX RGB  set LED color, rgb bits 0-7",
		Func: func(c *ishell.Context) {
			index, ok := argLevel(c, 0, 1)
			if !ok {
				return
			}
			rgb, ok := argLevel(c, 1, 7)
			if !ok {
				return
			}
			if err := shellFrom(c).Board.SetLED(int(index), rgb); err != nil {
				c.Err(err)
			}
		},
	},
	{
		Name: "brightness",
		Help: "LEVEL  set display brightness 0-16",
		Func: func(c *ishell.Context) {
			level, ok := argLevel(c, 0, 16)
			if !ok {
				return
			}
			if err := shellFrom(c).Board.SetBrightness(level); err != nil {
				c.Err(err)
			}
		},
	},
	{
		Name: "invert",
		Help: "0|1  invert the display",
		Func: func(c *ishell.Context) {
			on, ok := argLevel(c, 0, 1)
			if !ok {
				return
			}
			if err := shellFrom(c).Board.SetInverted(on != 0); err != nil {
				c.Err(err)
			}
		},
	},
}
