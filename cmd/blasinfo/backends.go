package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-blas/internal/cpu"
	"github.com/cwbudde/algo-blas/internal/kernels/registry"
)

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List registered kernel backends and the one this CPU selects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printBackends(cmd)
		},
	}
}

func printBackends(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	features := cpu.DetectFeatures()

	flags := lo.Filter([]lo.Tuple2[string, bool]{
		lo.T2("sse2", features.HasSSE2),
		lo.T2("avx", features.HasAVX),
		lo.T2("avx2", features.HasAVX2),
		lo.T2("fma", features.HasFMA),
		lo.T2("avx512", features.HasAVX512),
		lo.T2("neon", features.HasNEON),
	}, func(f lo.Tuple2[string, bool], _ int) bool { return f.B })
	names := lo.Map(flags, func(f lo.Tuple2[string, bool], _ int) string { return f.A })

	if _, err := fmt.Fprintf(out, "arch: %s  features: %s  force-generic: %t\n\n",
		features.Architecture, lo.Ternary(len(names) == 0, "none", strings.Join(names, ",")),
		features.ForceGeneric); err != nil {
		return err
	}

	selected := ""
	if entry := registry.Global.Lookup(features); entry != nil {
		selected = entry.Name
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "Backend\tLevel\tPriority\tSupported\tSelected"); err != nil {
		return err
	}
	for _, e := range registry.Global.ListEntries() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			e.Name,
			e.SIMDLevel,
			e.Priority,
			lo.Ternary(cpu.Supports(features, e.SIMDLevel), "yes", "no"),
			lo.Ternary(e.Name == selected, "*", ""),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}
