package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/futig/fitplan-backend/internal/builder"
	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/logger"
	"github.com/spf13/cobra"
)

type planGenerator interface {
	Generate(ctx context.Context, profile *entity.Profile) (*entity.Plan, error)
}

type assetGenerator interface {
	Generate(ctx context.Context, req *entity.AssetRequest) (entity.AssetResult, error)
}

type synthesizer interface {
	Synthesize(ctx context.Context, req *entity.SpeechRequest) (*entity.Audio, error)
}

type services struct {
	Plans  planGenerator
	Assets assetGenerator
	Speech synthesizer
}

// loader builds the services for one command run; the returned func releases them.
type loader func(ctx context.Context, env string) (*services, func(), error)

func loadServices(ctx context.Context, env string) (*services, func(), error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	core, err := builder.NewCore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		core.Close()
		_ = log.Sync()
	}

	return &services{Plans: core.Plans, Assets: core.Assets, Speech: core.Speech}, closeFn, nil
}

func newRootCmd(load loader) *cobra.Command {
	var env string

	rootCmd := &cobra.Command{
		Use:           "fitplan",
		Short:         "Generate fitness plans, pictures and narration from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&env, "env", "local", "Environment to run (local, prod, or custom)")

	withServices := func(run func(cmd *cobra.Command, svc *services) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := load(cmd.Context(), env)
			if err != nil {
				return err
			}
			defer closeFn()

			return run(cmd, svc)
		}
	}

	rootCmd.AddCommand(
		newPlanCmd(withServices),
		newImagesCmd(withServices),
		newSpeakCmd(withServices),
	)

	return rootCmd
}

type runWrapper func(run func(cmd *cobra.Command, svc *services) error) func(*cobra.Command, []string) error

func newPlanCmd(wrap runWrapper) *cobra.Command {
	var (
		profile                                     entity.Profile
		gender, goal, level, location, diet, stress string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a workout and diet plan for a profile",
		RunE: wrap(func(cmd *cobra.Command, svc *services) error {
			profile.Gender = entity.Gender(gender)
			profile.Goal = entity.Goal(goal)
			profile.Level = entity.FitnessLevel(level)
			profile.Location = entity.WorkoutLocation(location)
			profile.Diet = entity.DietPreference(diet)
			profile.StressLevel = entity.StressLevel(stress)

			plan, err := svc.Plans.Generate(cmd.Context(), &profile)
			if err != nil {
				return err
			}

			printPlan(cmd.OutOrStdout(), plan)
			return nil
		}),
	}

	f := cmd.Flags()
	f.StringVar(&profile.Name, "name", "", "Name")
	f.IntVar(&profile.Age, "age", 0, "Age in years")
	f.StringVar(&gender, "gender", "", "Male, Female or Other")
	f.Float64Var(&profile.HeightCm, "height", 0, "Height in cm")
	f.Float64Var(&profile.WeightKg, "weight", 0, "Weight in kg")
	f.StringVar(&goal, "goal", "", "Weight Loss, Muscle Gain, Endurance, Strength or Flexibility")
	f.StringVar(&level, "level", "", "Beginner, Intermediate or Advanced")
	f.StringVar(&location, "location", "", "Home, Gym or Outdoor")
	f.StringVar(&diet, "diet", "", "Veg, Non-Veg, Vegan or Keto")
	f.StringVar(&stress, "stress", "", "Low, Moderate or High")
	f.StringVar(&profile.MedicalHistory, "medical", "", "Medical history")

	return cmd
}

func newImagesCmd(wrap runWrapper) *cobra.Command {
	var req entity.AssetRequest

	cmd := &cobra.Command{
		Use:   "images",
		Short: "Generate a picture for each exercise and meal",
		RunE: wrap(func(cmd *cobra.Command, svc *services) error {
			result, err := svc.Assets.Generate(cmd.Context(), &req)
			// A missing credential still yields placeholders worth printing.
			if result != nil {
				printReferences(cmd.OutOrStdout(), result)
			}
			return err
		}),
	}

	cmd.Flags().StringArrayVar(&req.Exercises, "exercise", nil, "Exercise name (repeatable)")
	cmd.Flags().StringArrayVar(&req.Meals, "meal", nil, "Meal name (repeatable)")

	return cmd
}

func newSpeakCmd(wrap runWrapper) *cobra.Command {
	var (
		req entity.SpeechRequest
		out string
	)

	cmd := &cobra.Command{
		Use:   "speak",
		Short: "Narrate text into an mp3 file",
		RunE: wrap(func(cmd *cobra.Command, svc *services) error {
			audio, err := svc.Speech.Synthesize(cmd.Context(), &req)
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, audio.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(audio.Data), out)
			return nil
		}),
	}

	cmd.Flags().StringVar(&req.Text, "text", "", "Text to narrate")
	cmd.Flags().StringVar(&req.VoiceID, "voice", "", "Voice ID, the configured default when empty")
	cmd.Flags().StringVar(&out, "out", "speech.mp3", "Output file")

	return cmd
}

func printPlan(w io.Writer, plan *entity.Plan) {
	sections := []struct {
		title string
		body  string
	}{
		{"WORKOUT PLAN", plan.Workout},
		{"DIET PLAN", plan.Diet},
		{"TIPS & MOTIVATION", plan.Tips},
		{"DAILY MOTIVATION", plan.Motivation},
	}

	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s ==\n%s\n", s.title, s.body)
	}
}

func printReferences(w io.Writer, result entity.AssetResult) {
	refs := result.References()

	names := make([]string, 0, len(refs))
	for name := range refs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, refs[name])
	}
}

func describeError(err error) string {
	var appErr *entity.AppError
	if !errors.As(err, &appErr) {
		return "Error: " + err.Error()
	}

	msg := "Error: " + appErr.Message
	if appErr.Details != "" {
		msg += " (" + appErr.Details + ")"
	}
	if appErr.NeedsSetup {
		msg += "\nConfigure the missing API key and try again."
	}
	return msg
}
