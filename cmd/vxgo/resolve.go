package main

import (
	"fmt"

	"github.com/hupe1980/vxgo/kernel"
	"github.com/hupe1980/vxgo/registry"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <name|id>",
	Short: "Resolve a kernel by canonical name or identifier",
	Long: `Resolves a kernel against the standard table. The argument is
either a canonical dotted name (org.khronos.openvx.sobel_3x3) or a
hexadecimal identifier (0x1900019).`,
	Args: cobra.ExactArgs(1),
	RunE: resolveKernel,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func resolveKernel(cmd *cobra.Command, args []string) error {
	reg := registry.New()

	id, err := kernel.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}

	d, err := reg.Lookup(id)
	if err != nil {
		return err
	}

	fmt.Printf("name:    %s\n", d.Name)
	fmt.Printf("id:      0x%08x\n", uint32(d.ID))
	fmt.Printf("vendor:  0x%03x\n", uint16(d.ID.Vendor()))
	fmt.Printf("library: 0x%02x\n", uint8(d.ID.Library()))
	fmt.Printf("offset:  0x%x\n", uint16(d.ID.Offset()))

	fmt.Println("params:")
	for i, p := range d.Signature {
		opt := ""
		if p.Optional {
			opt = " (optional)"
		}
		fmt.Printf("  %d: %s %s %s%s\n", i, p.Direction, p.Type, p.Name, opt)
	}
	return nil
}
