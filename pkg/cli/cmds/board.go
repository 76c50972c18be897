package cmds

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/betz-engineering/uiboard.go/pkg/host"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the board firmware version",
	Args:  cobra.NoArgs,
	RunE: withBoard(func(b *host.Board) error {
		version, err := b.FirmwareVersion()
		if err != nil {
			return err
		}
		fmt.Println(version)
		return nil
	}),
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reinitialize the board",
	Args:  cobra.NoArgs,
	RunE: withBoard(func(b *host.Board) error {
		return b.Reset()
	}),
}

var inputsCmd = &cobra.Command{
	Use:   "inputs",
	Short: "Read button flags and the encoder delta since last read",
	Args:  cobra.NoArgs,
	RunE: withBoard(func(b *host.Board) error {
		state, err := b.Inputs()
		if err != nil {
			return err
		}
		fmt.Printf("buttons %#02x encoder %+d\n", state.Flags, state.EncoderDelta)
		return nil
	}),
}

var ledsCmd = &cobra.Command{
	Use:   "leds A [B]",
	Short: "Set LED colors, 3-bit rgb values 0-7",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseLevel(args[0], 7)
		if err != nil {
			return err
		}
		var second byte
		if len(args) > 1 {
			if second, err = parseLevel(args[1], 7); err != nil {
				return err
			}
		}
		return withBoard(func(b *host.Board) error {
			if err := b.SetLED(0, a); err != nil {
				return err
			}
			if len(args) > 1 {
				return b.SetLED(1, second)
			}
			return nil
		})(cmd, args)
	},
}

var brightnessCmd = &cobra.Command{
	Use:   "brightness LEVEL",
	Short: "Set display brightness, 0 (off) to 16",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(args[0], 16)
		if err != nil {
			return err
		}
		return withBoard(func(b *host.Board) error {
			return b.SetBrightness(level)
		})(cmd, args)
	},
}

var invertCmd = &cobra.Command{
	Use:   "invert on|off",
	Short: "Invert the display (prevents burn-in if done periodically)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		on, err := parseOnOff(args[0])
		if err != nil {
			return err
		}
		return withBoard(func(b *host.Board) error {
			return b.SetInverted(on)
		})(cmd, args)
	},
}

func parseLevel(s string, max uint64) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil || v > max {
		return 0, fmt.Errorf("value %q out of range 0-%d", s, max)
	}
	return byte(v), nil
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func init() {
	rootCmd.AddCommand(versionCmd, resetCmd, inputsCmd, ledsCmd, brightnessCmd, invertCmd)
}
