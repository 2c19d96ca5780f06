// Package cmd implements the tip5 command line interface.
package cmd

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/maxirmx/tip5/field"
	"github.com/maxirmx/tip5/sponge"
)

// Version of the tool.
const Version = "v0.1.0"

// Mode selects which hash operation runs.
type Mode byte

const (
	ModePair Mode = iota
	ModeVarlen
)

// Mode is usable directly as a command line flag.
var _ pflag.Value = (*Mode)(nil)

func (m Mode) String() string {
	switch m {
	case ModePair:
		return "pair"
	case ModeVarlen:
		return "varlen"
	}
	return fmt.Sprintf("Mode(%d)", byte(m))
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	switch s {
	case "pair":
		*m = ModePair
	case "varlen":
		*m = ModeVarlen
	default:
		return fmt.Errorf("unknown mode %q, want \"pair\" or \"varlen\"", s)
	}
	return nil
}

// Type implements pflag.Value.
func (m Mode) Type() string { return "mode" }

// ValidationError reports a wrong number of inputs for the selected mode.
type ValidationError struct {
	Mode Mode
	Got  int
}

func (e *ValidationError) Error() string {
	if e.Mode == ModePair {
		return fmt.Sprintf("pair mode requires exactly 2 inputs, got %d", e.Got)
	}
	return fmt.Sprintf("varlen mode requires at least 2 inputs, got %d", e.Got)
}

var mode = ModePair

// Root is the top level command.
var Root = &cobra.Command{
	Use:     "tip5 [flags] <number>...",
	Short:   "Hash calculator over 64-bit field elements",
	Version: Version,
	Long: `Computes a digest over numbers given on the command line.

Pair mode hashes exactly 2 numbers, each embedded as the first of the five
digest slots with the rest zero. Varlen mode hashes 2 or more numbers as one
sequence.

Supported number formats:

  * Hexadecimal: 0x01020304 (0x prefix, even number of digits)
  * Decimal:     16909060
  * Octal:       0100401404 (0 prefix)
`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(command *cobra.Command, args []string) error {
		return run(command.OutOrStdout(), mode, args)
	},
}

func init() {
	Root.Flags().VarP(&mode, "mode", "m", "Hash mode: 'pair' or 'varlen'")
}

// run validates and parses the inputs, invokes the hash primitive for the
// selected mode and prints the confirmation line and the digest. Nothing is
// written unless every input parses.
func run(out io.Writer, mode Mode, inputs []string) error {
	switch mode {
	case ModePair:
		if len(inputs) != 2 {
			return &ValidationError{Mode: mode, Got: len(inputs)}
		}
	default:
		if len(inputs) < 2 {
			return &ValidationError{Mode: mode, Got: len(inputs)}
		}
	}

	elems := make([]field.Element, len(inputs))
	for i, input := range inputs {
		e, err := field.Parse(input)
		if err != nil {
			return err
		}
		elems[i] = e
	}

	fmt.Fprintf(out, "Hash %v mode [%s]:\n", mode, strings.Join(inputs, ", "))

	var result sponge.Digest
	if mode == ModePair {
		result = sponge.HashPair(sponge.Digest{elems[0]}, sponge.Digest{elems[1]})
	} else {
		result = sponge.HashVarlen(elems)
	}
	fmt.Fprintf(out, "Result: %v\n", result)
	return nil
}

// Main runs the command and exits non-zero on any failure.
func Main() {
	if err := Root.Execute(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}
