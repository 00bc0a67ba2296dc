package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "List upcoming interviews across all active applications",
	RunE:  runAgenda,
}

func init() {
	rootCmd.AddCommand(agendaCmd)
}

func runAgenda(_ *cobra.Command, _ []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	agenda := a.store.Agenda()
	if len(agenda) == 0 {
		fmt.Fprintln(os.Stdout, "No interviews scheduled.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSTAGE\tROLE\tCOMPANY\tMODE\tTODOS")
	for _, entry := range agenda {
		iv := entry.Interview
		date := iv.Date
		if date == "" {
			date = "unscheduled"
		}
		open := 0
		for _, todo := range iv.PreTodos {
			if !todo.Completed {
				open++
			}
		}
		for _, todo := range iv.PostTodos {
			if !todo.Completed {
				open++
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d open\n",
			date, iv.Stage, entry.Title, entry.Company, iv.Mode, open)
	}
	return w.Flush()
}
