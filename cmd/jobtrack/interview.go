package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwalters/jobtrack/internal/store"
	"github.com/kwalters/jobtrack/internal/types"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Manage interview rounds and their checklists",
}

var interviewAddCmd = &cobra.Command{
	Use:   "add <job-id>",
	Short: "Add an interview round to an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterviewAdd,
}

var interviewRemoveCmd = &cobra.Command{
	Use:   "remove <job-id> <interview-id>",
	Short: "Remove an interview round",
	Args:  cobra.ExactArgs(2),
	RunE:  runInterviewRemove,
}

var interviewTodoCmd = &cobra.Command{
	Use:   "todo <job-id> <interview-id> <text>",
	Short: "Add a prep or follow-up item to an interview",
	Args:  cobra.ExactArgs(3),
	RunE:  runInterviewTodo,
}

var interviewToggleCmd = &cobra.Command{
	Use:   "toggle <job-id> <interview-id> <todo-id>",
	Short: "Toggle a checklist item done or not done",
	Args:  cobra.ExactArgs(3),
	RunE:  runInterviewToggle,
}

var (
	interviewStage       string
	interviewInterviewer string
	interviewDate        string
	interviewInPerson    bool
	interviewLink        string
	todoPost             bool
)

func init() {
	interviewAddCmd.Flags().StringVar(&interviewStage, "stage", "", "Round name, e.g. 'Phone Screen' (required)")
	interviewAddCmd.Flags().StringVar(&interviewInterviewer, "with", "", "Interviewer name")
	interviewAddCmd.Flags().StringVar(&interviewDate, "date", "", "Scheduled time, RFC3339 UTC")
	interviewAddCmd.Flags().BoolVar(&interviewInPerson, "in-person", false, "In-person round instead of remote")
	interviewAddCmd.Flags().StringVar(&interviewLink, "link", "", "Meeting link")

	interviewTodoCmd.Flags().BoolVar(&todoPost, "post", false, "Follow-up item instead of prep item")
	interviewToggleCmd.Flags().BoolVar(&todoPost, "post", false, "Item is on the follow-up list")

	interviewCmd.AddCommand(interviewAddCmd, interviewRemoveCmd, interviewTodoCmd, interviewToggleCmd)
	rootCmd.AddCommand(interviewCmd)
}

func runInterviewAdd(_ *cobra.Command, args []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	jobID, err := resolveJobID(a, args[0])
	if err != nil {
		return err
	}
	mode := types.ModeRemote
	if interviewInPerson {
		mode = types.ModeInPerson
	}
	id, err := a.store.AddInterview(jobID, store.InterviewInput{
		Stage:       interviewStage,
		Interviewer: interviewInterviewer,
		Date:        interviewDate,
		Mode:        mode,
		Link:        interviewLink,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Added interview %s\n", id)
	return nil
}

func runInterviewRemove(_ *cobra.Command, args []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	jobID, err := resolveJobID(a, args[0])
	if err != nil {
		return err
	}
	if err := a.store.RemoveInterview(jobID, args[1]); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Removed interview")
	return nil
}

func runInterviewTodo(_ *cobra.Command, args []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	jobID, err := resolveJobID(a, args[0])
	if err != nil {
		return err
	}
	id, err := a.store.AddTodo(jobID, args[1], todoPhase(), args[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Added todo %s\n", id)
	return nil
}

func runInterviewToggle(_ *cobra.Command, args []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	jobID, err := resolveJobID(a, args[0])
	if err != nil {
		return err
	}
	if err := a.store.ToggleTodo(jobID, args[1], todoPhase(), args[2]); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Toggled")
	return nil
}

func todoPhase() store.TodoPhase {
	if todoPost {
		return store.PhasePost
	}
	return store.PhasePre
}
