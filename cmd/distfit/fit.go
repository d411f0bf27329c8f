package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	mstats "github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"github.com/probviz/probdist/dist"
	"github.com/probviz/probdist/fit"
	"github.com/probviz/probdist/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type fitOptions struct {
	config fit.Config
	top    int
	json   bool
}

func runFit(cmd *cobra.Command, args []string, o *fitOptions, log *zap.Logger) error {
	xs, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	e := fit.Engine{Config: o.config, Logger: log}
	rep, err := e.Fit(cmd.Context(), xs)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if o.json {
		return writeJSON(w, rep, o.top)
	}
	sum, err := mstats.Sum(mstats.Float64Data(xs))
	if err != nil {
		return err
	}
	writeSummary(w, rep.Summary, sum)
	fmt.Fprintln(w)
	writeReport(w, rep, o.top)
	return nil
}

// readInput parses the named files in order, or r if there are none.
func readInput(r io.Reader, files []string) ([]float64, error) {
	if len(files) == 0 {
		return stats.ParseSample(r)
	}
	var xs []float64
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		sample, err := stats.ParseSample(f)
		f.Close()
		if err != nil && !errors.Is(err, stats.ErrEmptySample) {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		xs = append(xs, sample...)
	}
	if len(xs) == 0 {
		return nil, stats.ErrEmptySample
	}
	return xs, nil
}

func writeSummary(w io.Writer, s *stats.Summary, sum float64) {
	fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g", s.N, sum, s.Mean)
	if !math.IsNaN(s.LogMean) {
		fmt.Fprintf(w, "  gmean %.6g", math.Exp(s.LogMean))
	}
	fmt.Fprintf(w, "  std dev %.6g  variance %.6g\n", s.StdDev, s.Variance())
	fmt.Fprintln(w)

	// Quartiles.
	for _, q := range []struct {
		label string
		x     float64
	}{
		{"min", s.Min},
		{"25%ile", s.Q1},
		{"median", s.Median},
		{"75%ile", s.Q3},
		{"max", s.Max},
	} {
		fmt.Fprintf(w, "%8s %.6g\n", q.label, q.x)
	}
}

func writeReport(w io.Writer, rep *fit.Report, top int) {
	fitted := rep.Fitted
	if top > 0 && len(fitted) > top {
		fitted = fitted[:top]
	}
	if len(fitted) == 0 {
		fmt.Fprintln(w, "no distribution fits the sample")
	} else {
		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"Rank", "Family", "Parameters", "Delta", "p(KS)", "p(ChiSqr)"})
		for _, r := range fitted {
			table.Append([]string{
				fmt.Sprint(r.Rank),
				r.Name(),
				formatParams(r.Family, r.Params),
				fmt.Sprintf("%.4g", r.Delta),
				fmt.Sprintf("%.4f", r.PKS),
				fmt.Sprintf("%.4f", r.PChiSqr),
			})
		}
		table.Render()
	}

	for _, b := range []struct {
		label   string
		results []fit.Result
	}{
		{"rejected", rep.Rejected},
		{"no fit", rep.NoFit},
		{"not fittable", rep.NotFittable},
	} {
		if len(b.results) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", b.label, strings.Join(resultNames(b.results), ", "))
	}
}

// formatParams formats v as name=value pairs in declaration order.
func formatParams(f dist.Family, v dist.Params) string {
	parts := make([]string, len(v))
	for i, p := range f.Params() {
		parts[i] = fmt.Sprintf("%s=%.4g", p.Name, v[i])
	}
	return strings.Join(parts, " ")
}

type jsonFit struct {
	Rank    int                `json:"rank"`
	Family  string             `json:"family"`
	Params  map[string]float64 `json:"params"`
	Delta   float64            `json:"delta"`
	PKS     float64            `json:"p_ks"`
	PChiSqr float64            `json:"p_chisqr"`
}

type jsonReport struct {
	N           int       `json:"n"`
	Mean        float64   `json:"mean"`
	StdDev      float64   `json:"std_dev"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	Fitted      []jsonFit `json:"fitted"`
	Rejected    []string  `json:"rejected"`
	NoFit       []string  `json:"no_fit"`
	NotFittable []string  `json:"not_fittable"`
}

func writeJSON(w io.Writer, rep *fit.Report, top int) error {
	s := rep.Summary
	out := jsonReport{
		N: s.N, Mean: s.Mean, StdDev: s.StdDev, Min: s.Min, Max: s.Max,
		Fitted:      []jsonFit{},
		Rejected:    resultNames(rep.Rejected),
		NoFit:       resultNames(rep.NoFit),
		NotFittable: resultNames(rep.NotFittable),
	}
	for _, r := range rep.Fitted {
		if top > 0 && r.Rank > top {
			break
		}
		out.Fitted = append(out.Fitted, jsonFit{
			Rank:    r.Rank,
			Family:  r.Name(),
			Params:  r.Named(),
			Delta:   r.Delta,
			PKS:     r.PKS,
			PChiSqr: r.PChiSqr,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding report")
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func resultNames(rs []fit.Result) []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name()
	}
	return names
}
