// Command a64front decodes AArch64 instruction words against the
// translator's decode table and prints what the front end would dispatch.
package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/arch/arm64/arm64asm"

	"github.com/virtland/a64front/a64"
	"github.com/virtland/a64front/decoder"
	"github.com/virtland/a64front/internal/logflags"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var logDecoder, logJIT bool

	root := &cobra.Command{
		Use:           "a64front",
		Short:         "inspect the AArch64 decode tables of the translator front end",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logflags.Setup(logDecoder, logJIT)
		},
	}
	root.PersistentFlags().BoolVar(&logDecoder, "log-decoder", false, "log decode table construction")
	root.PersistentFlags().BoolVar(&logJIT, "log-jit", false, "log block cache activity")
	root.AddCommand(decodeCommand())
	root.AddCommand(tableCommand())
	return root
}

func decodeCommand() *cobra.Command {
	var ref bool

	cmd := &cobra.Command{
		Use:   "decode word...",
		Short: "decode instruction words given as hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				word, err := parseWord(arg)
				if err != nil {
					return err
				}
				printDecoded(word, ref)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&ref, "ref", false, "show the reference disassembly alongside the matched rule")
	return cmd
}

func printDecoded(word uint32, ref bool) {
	m, ok := a64.Decode[a64.NopVisitor](word)
	if !ok {
		fmt.Printf("%08x  <unallocated>\n", word)
	} else {
		class, _ := a64.ClassOf(m.Name())
		fmt.Printf("%08x  %-42s [%s, %d fixed bits]\n", word, m.Name(), class, m.Pattern().FixedBits())
	}
	if ref {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], word)
		if inst, err := arm64asm.Decode(buf[:]); err == nil {
			fmt.Printf("%8s  ref: %s\n", "", arm64asm.GNUSyntax(inst))
		} else {
			fmt.Printf("%8s  ref: (undecodable: %s)\n", "", err)
		}
	}
}

func tableCommand() *cobra.Command {
	var className string
	var dump bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "print the ordered decode table",
		RunE: func(cmd *cobra.Command, args []string) error {
			class := a64.ClassInvalid
			if className != "" {
				class = a64.ParseClass(className)
				if class == a64.ClassInvalid {
					return fmt.Errorf("unrecognized instruction class %q", className)
				}
			}

			table := a64.NewDecodeTable[a64.NopVisitor]()
			for i := range table {
				m := &table[i]
				c, _ := a64.ClassOf(m.Name())
				if class != a64.ClassInvalid && c != class {
					continue
				}
				fmt.Printf("%3d  %2d  %-10s %-42s %s\n", i, m.Pattern().FixedBits(), c, m.Name(), m.Pattern())
			}
			if dump {
				patterns := make(map[string]decoder.Pattern, len(table))
				for i := range table {
					patterns[table[i].Name()] = table[i].Pattern()
				}
				spew.Dump(patterns)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&className, "class", "", "only show entries of one instruction class")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the compiled patterns")
	return cmd
}

func parseWord(arg string) (uint32, error) {
	s := strings.TrimPrefix(strings.ToLower(arg), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("failed to parse instruction word %q: %s", arg, err)
	}
	return uint32(v), nil
}
