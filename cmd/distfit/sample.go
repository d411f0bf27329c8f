package main

import (
	"bufio"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/probviz/probdist/dist"
	"github.com/spf13/cobra"
)

func newSampleCmd(cfg config) *cobra.Command {
	var n int
	var seed uint64
	cmd := &cobra.Command{
		Use:   "sample family [name=value...]",
		Short: "Draw random values from a distribution",
		Long: `sample prints n values drawn from the named family, one per line.
Parameters not given take their default values.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := dist.Lookup(args[0])
			if err != nil {
				return err
			}
			v, err := parseParams(f, args[1:])
			if err != nil {
				return err
			}
			if n < 0 {
				return errors.Newf("invalid sample size %d", n)
			}

			r := rand.New(rand.NewPCG(seed, 0))
			w := bufio.NewWriter(cmd.OutOrStdout())
			for i := 0; i < n; i++ {
				w.WriteString(strconv.FormatFloat(f.Rand(v, r), 'g', -1, 64))
				w.WriteByte('\n')
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 10, "number of values")
	cmd.Flags().Uint64Var(&seed, "seed", cfg.seed, "random `seed`")
	return cmd
}

// parseParams parses name=value arguments into validated parameters
// of f. Unnamed parameters take their defaults.
func parseParams(f dist.Family, args []string) (dist.Params, error) {
	m := make(map[string]float64, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, errors.Newf("parameter %q is not of the form name=value", arg)
		}
		x, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %s", name)
		}
		m[name] = x
	}
	return dist.FromMap(f, m)
}
