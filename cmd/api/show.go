package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
)

var (
	flagYear  int
	flagMonth int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the habit grid and percentages of a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		view, stats, err := a.tracker.RenderMonth(cmd.Context(), flagYear, flagMonth)
		if err != nil {
			return err
		}

		return printMonth(cmd.OutOrStdout(), view, stats)
	},
}

func init() {
	now := time.Now()
	for _, c := range []*cobra.Command{showCmd, checkCmd} {
		c.Flags().IntVar(&flagYear, "year", now.Year(), "year")
		c.Flags().IntVar(&flagMonth, "month", int(now.Month()), "month (1-12)")
	}
}

// printMonth writes one line per habit: a mark per day followed by the
// habit percentage, then the overall percentage.
func printMonth(w io.Writer, view *domain.MonthView, stats *domain.MonthStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s %d\t", time.Month(view.Month), view.Year)
	var header strings.Builder
	for day := 1; day <= view.DaysInMonth; day++ {
		header.WriteString(fmt.Sprintf("%d", day%10))
	}
	fmt.Fprintf(tw, "%s\t%%\n", header.String())

	for i, row := range view.Rows {
		var marks strings.Builder
		for _, done := range row.Days {
			if done {
				marks.WriteByte('x')
			} else {
				marks.WriteByte('.')
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%d%%\n", row.Habit, marks.String(), stats.Habits[i].Percent)
	}

	fmt.Fprintf(tw, "Overall\t%d/%d\t%d%%\n", stats.Overall.Completed, stats.Overall.Total, stats.Overall.Percent)
	return tw.Flush()
}
