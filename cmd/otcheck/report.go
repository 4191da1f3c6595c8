// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/sugawarayuuta/sonnet"
)

// writeReport prints rep as JSON or as an aligned table.
func writeReport(w io.Writer, rep report, asJSON bool) error {
	if asJSON {
		b, err := sonnet.Marshal(rep)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}

	fmt.Fprintf(w, "run %s  scenario=%s  %dx%d  eps=%g  lr=%g  seed=%d\n",
		rep.RunID, rep.Scenario, rep.Sources, rep.Targets, rep.Epsilon, rep.LearningRate, rep.Seed)
	fmt.Fprintf(w, "sinkhorn reference %.10f (%s sweeps)\n\n", rep.Reference, humanize.Comma(int64(rep.SinkhornIterations)))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "iterations\tdistance\trel.error\tplan mass\tcol gap\ttime\t")
	for _, r := range rep.Budgets {
		fmt.Fprintf(tw, "%s\t%.10f\t%.4f%%\t%.6f\t%.2e\t%s\t\n",
			humanize.Comma(int64(r.Iterations)), r.Distance, 100*r.RelError, r.PlanMass, r.ColGap, r.Elapsed)
	}

	return tw.Flush()
}
