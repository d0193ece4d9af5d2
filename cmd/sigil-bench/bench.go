package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sigil-dev/sigil"
)

// result is one benchmark measurement, serializable for --json output.
type result struct {
	Name       string  `json:"name"`
	Ops        int     `json:"ops"`
	TotalNs    int64   `json:"total_ns"`
	NsPerOp    float64 `json:"ns_per_op"`
	Recomputes int     `json:"recomputes"`
}

// benchFlags are shared by all benchmark subcommands.
type benchFlags struct {
	ops      int
	jsonPath string
}

func (f *benchFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.ops, "ops", 100000, "Number of mutate+read cycles")
	cmd.Flags().StringVar(&f.jsonPath, "json", "", "Write results to this file as JSON")
}

func (f *benchFlags) report(results ...result) error {
	if f.jsonPath != "" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(f.jsonPath, append(data, '\n'), 0o644)
	}
	for _, r := range results {
		fmt.Printf("%-16s %10d ops %12.1f ns/op %12d recomputes\n",
			r.Name, r.Ops, r.NsPerOp, r.Recomputes)
	}
	return nil
}

// measure times fn, which runs the benchmark cycles over an already
// constructed graph and returns the number of recomputations the cycles
// triggered.
func measure(name string, ops int, fn func() int) result {
	start := time.Now()
	recomputes := fn()
	total := time.Since(start)

	return result{
		Name:       name,
		Ops:        ops,
		TotalNs:    total.Nanoseconds(),
		NsPerOp:    float64(total.Nanoseconds()) / float64(ops),
		Recomputes: recomputes,
	}
}

func chainCmd() *cobra.Command {
	var flags benchFlags
	var depth int

	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Benchmark a linear derivation chain",
		Long: `Builds a chain of derived views of the given depth over one signal,
then runs mutate+read cycles. Propagation is read-driven, so each cycle
reads every level of the chain in order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			recomputes := 0
			s := sigil.NewSignal(0)

			var chain []*sigil.Derived[sigil.Generation, int, int]
			var src sigil.Source[sigil.Generation, int] = s
			for i := 0; i < depth; i++ {
				d := sigil.Derive(src, func(n int) int {
					recomputes++
					return n + 1
				})
				chain = append(chain, d)
				src = d
			}

			// Only the cycles are timed and counted; the eager seed
			// computations at construction are excluded.
			recomputes = 0

			r := measure("chain", flags.ops, func() int {
				for i := 0; i < flags.ops; i++ {
					s.Set(i)
					for _, d := range chain {
						_ = d.Get()
					}
				}
				return recomputes
			})
			return flags.report(r)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&depth, "depth", 8, "Chain depth")
	return cmd
}

func fanoutCmd() *cobra.Command {
	var flags benchFlags
	var count int

	cmd := &cobra.Command{
		Use:   "fanout",
		Short: "Benchmark many views over one signal",
		Long: `Builds the given number of independent derived views over one signal,
then runs cycles of one mutation followed by a read of every view.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			recomputes := 0
			s := sigil.NewSignal(0)

			views := make([]*sigil.Derived[sigil.Generation, int, int], count)
			for i := range views {
				factor := i + 1
				views[i] = sigil.Derive(s, func(n int) int {
					recomputes++
					return n * factor
				})
			}

			recomputes = 0

			r := measure("fanout", flags.ops, func() int {
				for i := 0; i < flags.ops; i++ {
					s.Set(i)
					for _, d := range views {
						_ = d.Get()
					}
				}
				return recomputes
			})
			return flags.report(r)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&count, "count", 16, "Number of views")
	return cmd
}

func pairCmd() *cobra.Command {
	var flags benchFlags

	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Benchmark a combined two-signal view",
		Long: `Derives one view over a pair of signals and runs mutate+read cycles,
alternating which member of the pair is mutated. Every cycle invalidates
the view through exactly one member.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			recomputes := 0
			a := sigil.NewSignal(0)
			b := sigil.NewSignal(0)

			sum := sigil.Derive2(a, b, func(x, y int) int {
				recomputes++
				return x + y
			})

			recomputes = 0

			r := measure("pair", flags.ops, func() int {
				for i := 0; i < flags.ops; i++ {
					if i%2 == 0 {
						a.Set(i)
					} else {
						b.Set(i)
					}
					_ = sum.Get()
				}
				return recomputes
			})
			return flags.report(r)
		},
	}

	flags.register(cmd)
	return cmd
}
