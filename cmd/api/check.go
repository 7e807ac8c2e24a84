package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/services"
)

var (
	flagHabit string
	flagDay   int
	flagDone  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Mark a habit as done (or not) on a given day",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		stats, err := a.tracker.SetCompletion(cmd.Context(), services.SetCompletionInput{
			Habit:     flagHabit,
			Year:      flagYear,
			Month:     flagMonth,
			Day:       flagDay,
			Completed: flagDone,
		})
		if err != nil {
			return err
		}

		for _, h := range stats.Habits {
			if h.Habit == flagHabit {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d (%d%%)\n", h.Habit, h.Completed, h.Total, h.Percent)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Overall: %d/%d (%d%%)\n", stats.Overall.Completed, stats.Overall.Total, stats.Overall.Percent)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&flagHabit, "habit", "", "habit name, exactly as in the catalog")
	checkCmd.Flags().IntVar(&flagDay, "day", 0, "day of month")
	checkCmd.Flags().BoolVar(&flagDone, "done", true, "completion state to store")
	_ = checkCmd.MarkFlagRequired("habit")
	_ = checkCmd.MarkFlagRequired("day")
}
