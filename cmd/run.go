package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/certimentor/internal/agents"
	"github.com/abhisek/certimentor/internal/console"
	"github.com/abhisek/certimentor/internal/domain"
	"github.com/abhisek/certimentor/internal/llm"
	"github.com/abhisek/certimentor/internal/orchestrator"
	"github.com/abhisek/certimentor/internal/render"
	"github.com/abhisek/certimentor/internal/workflow"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the certification prep workflow",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkflow(cmd)
	},
}

func init() {
	runCmd.Flags().String("topics", "", "Certification topics to study (skips the prompt)")
	runCmd.Flags().String("email", "", "Email for study reminders")
	runCmd.Flags().String("level", "", "Experience level: beginner, intermediate, or advanced")
	runCmd.Flags().Int("days", 0, "Study days per week (1-7)")
	runCmd.Flags().Float64("hours", 0, "Hours per study day")
	runCmd.Flags().Bool("auto", false, "Run unattended: accept the checkpoint and answer every question A")
}

func runWorkflow(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd)
	v := viperForCmd(cmd)

	s, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	interactive := console.NewInteractive(os.Stdin, os.Stdout)

	setup := workflow.Setup{
		Topics:           v.GetString("topics"),
		Email:            v.GetString("email"),
		Level:            domain.UserLevel(v.GetString("level")),
		StudyDaysPerWeek: v.GetInt("days"),
		HoursPerDay:      v.GetFloat64("hours"),
	}
	if setup.Topics == "" {
		setup, err = interactive.ReadSetup()
		if err != nil {
			return err
		}
	} else {
		if !domain.ValidUserLevel(string(setup.Level)) {
			setup.Level = console.DefaultLevel
		}
		if setup.StudyDaysPerWeek < 1 || setup.StudyDaysPerWeek > 7 {
			setup.StudyDaysPerWeek = console.DefaultStudyDaysPerWeek
		}
		if setup.HoursPerDay <= 0 {
			setup.HoursPerDay = console.DefaultHoursPerDay
		}
	}

	var io workflow.UserIO = interactive
	if v.GetBool("auto") {
		io = console.NewAuto("A")
	}

	orc := orchestrator.New(provider, agents.NewRegistry(), logger)
	ctrl := workflow.New(orc, io, render.New(os.Stdout), s.RunRepo(), logger)

	state, err := ctrl.Execute(ctx, setup)
	if err != nil {
		return err
	}
	if state.Outcome == workflow.OutcomeStoppedAtCheckpoint {
		fmt.Println("\nStopped before the assessment. Run again when you're ready.")
	}
	return nil
}
