// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/lowrank/lab"
)

// Console prints one diagnostics row per update. Columns have a fixed
// minimum width so rows flushed one at a time still line up.
type Console struct {
	tw     *tabwriter.Writer
	header bool
}

// NewConsole writes to w.
func NewConsole(w io.Writer) *Console {
	return &Console{tw: tabwriter.NewWriter(w, 12, 0, 2, ' ', tabwriter.AlignRight)}
}

// Render implements lab.Display.
func (c *Console) Render(u lab.DisplayUpdate, s lab.Spectrum) error {
	if !c.header {
		if _, err := fmt.Fprintf(c.tw, "Mode\tRank\tOptimal\tFrobenius\tMSE\tEnergy %%\tGain %%\t\n"); err != nil {
			return renderErrorf(opConsole, err)
		}
		c.header = true
	}
	d := u.Diagnostics
	if _, err := fmt.Fprintf(c.tw, "%s\t%d\t%d\t%.6f\t%.6f\t%.2f\t%.2f\t\n",
		u.Mode, u.Rank, s.Optimal, d.FrobeniusError, d.MSE, d.EnergyPercent, d.GainPercent); err != nil {
		return renderErrorf(opConsole, err)
	}
	if err := c.tw.Flush(); err != nil {
		return renderErrorf(opConsole, err)
	}

	return nil
}
