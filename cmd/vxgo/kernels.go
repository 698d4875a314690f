package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/hupe1980/vxgo/registry"
	"github.com/spf13/cobra"
)

var kernelsCmd = &cobra.Command{
	Use:   "kernels",
	Short: "List the standard kernel table",
	RunE:  listKernels,
}

func init() {
	rootCmd.AddCommand(kernelsCmd)
}

func listKernels(cmd *cobra.Command, args []string) error {
	reg := registry.New()

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "OFFSET\tID\tNAME\tPARAMS")

	for d := range reg.Kernels() {
		fmt.Fprintf(w, "0x%x\t0x%08x\t%s\t%d\n",
			uint16(d.ID.Offset()), uint32(d.ID), d.Name, d.Signature.Arity())
	}

	return w.Flush()
}
