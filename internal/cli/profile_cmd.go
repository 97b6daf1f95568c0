package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/stricto/internal/domain"
)

func newProfileCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or set up the study profile",
	}
	cmd.AddCommand(newProfileShowCmd(a), newProfileSetupCmd(a))
	return cmd
}

func newProfileShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			dna, err := a.Profile.Get(context.Background(), a.UserID)
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render("PROFILE " + dna.UserID))
			fmt.Printf("Goal: %s (%s), date %s\n", dna.Goal.Exam, dna.Goal.Stage, orDash(dna.Goal.Date))
			fmt.Printf("Level: %s, %d hrs/day, chronotype %s\n",
				dna.Level, dna.Schedule.Hours, orDash(dna.Schedule.Chronotype))
			fmt.Printf("Weak: %s\n", weakStyle.Render(orDash(strings.Join(dna.Subjects.Weak, ", "))))
			fmt.Printf("Average: %s\n", orDash(strings.Join(dna.Subjects.Average, ", ")))
			fmt.Printf("Strong: %s\n", strongStyle.Render(orDash(strings.Join(dna.Subjects.Strong, ", "))))
			fmt.Printf("Points %d, %d tasks completed, %d badges\n",
				dna.Gamification.Points, dna.Gamification.TotalTasksCompleted, len(dna.Gamification.Badges))
			return nil
		},
	}
}

func newProfileSetupCmd(a *App) *cobra.Command {
	var exam, date, stage, level, hours, chronotype string
	var weak, average, strong []string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create or update the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.interactive() && !cmd.Flags().Changed("exam") {
				if err := setupForm(&exam, &date, &stage, &level, &hours, &chronotype, &weak, &average, &strong).Run(); err != nil {
					return err
				}
			}
			if exam == "" {
				return fmt.Errorf("exam name is required, pass --exam or run interactively")
			}

			dailyHours, err := strconv.Atoi(hours)
			if err != nil || dailyHours < 1 {
				dailyHours = 6
			}

			dna := &domain.DNA{
				UserID: a.UserID,
				Goal: domain.Goal{
					Exam:  exam,
					Date:  date,
					Stage: domain.ExamStage(stage),
				},
				Level: domain.UserLevel(level),
				Subjects: domain.SubjectSplit{
					Weak:    weak,
					Average: average,
					Strong:  strong,
				},
				Schedule: domain.Schedule{Hours: dailyHours, Chronotype: chronotype},
			}

			// Keep gamification and progress on an existing profile.
			if existing, err := a.Profile.Get(context.Background(), a.UserID); err == nil {
				dna.Gamification = existing.Gamification
				dna.Progress = existing.Progress
				if chronotype == "" {
					dna.Schedule.Chronotype = existing.Schedule.Chronotype
				}
			}

			if err := a.Profile.Save(context.Background(), dna); err != nil {
				return err
			}
			fmt.Println(okStyle.Render("Profile saved."))
			return nil
		},
	}

	cmd.Flags().StringVar(&exam, "exam", "", "Target exam name")
	cmd.Flags().StringVar(&date, "date", "", "Exam date (YYYY-MM-DD, or 'other' when undecided)")
	cmd.Flags().StringVar(&stage, "stage", string(domain.StagePrelims), "Exam stage (Prelims or Mains)")
	cmd.Flags().StringVar(&level, "level", string(domain.LevelRepeater), "Preparation level (beginner or repeater)")
	cmd.Flags().StringVar(&hours, "hours", "6", "Daily study hours")
	cmd.Flags().StringVar(&chronotype, "chronotype", "", "Best focus window (morning or night)")
	cmd.Flags().StringSliceVar(&weak, "weak", nil, "Weak subjects (MATH, REASONING, ENGLISH, GA)")
	cmd.Flags().StringSliceVar(&average, "average", nil, "Average subjects")
	cmd.Flags().StringSliceVar(&strong, "strong", nil, "Strong subjects")
	return cmd
}

func setupForm(exam, date, stage, level, hours, chronotype *string, weak, average, strong *[]string) *huh.Form {
	subjectOptions := func() []huh.Option[string] {
		opts := make([]huh.Option[string], 0, len(domain.CanonicalSubjects))
		for _, s := range domain.CanonicalSubjects {
			opts = append(opts, huh.NewOption(string(s), string(s)))
		}
		return opts
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target exam").
				Placeholder("SSC CGL").
				Value(exam),
			huh.NewInput().
				Title("Exam date (YYYY-MM-DD, 'other' if undecided)").
				Placeholder("2026-12-31").
				Value(date).
				Validate(validateExamDate),
			huh.NewSelect[string]().
				Title("Stage").
				Options(
					huh.NewOption("Prelims", string(domain.StagePrelims)),
					huh.NewOption("Mains", string(domain.StageMains)),
				).
				Value(stage),
			huh.NewSelect[string]().
				Title("Level").
				Options(
					huh.NewOption("Beginner", string(domain.LevelBeginner)),
					huh.NewOption("Repeater", string(domain.LevelRepeater)),
				).
				Value(level),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Weak subjects").
				Options(subjectOptions()...).
				Value(weak),
			huh.NewMultiSelect[string]().
				Title("Average subjects").
				Options(subjectOptions()...).
				Value(average),
			huh.NewMultiSelect[string]().
				Title("Strong subjects").
				Options(subjectOptions()...).
				Value(strong),
			huh.NewInput().
				Title("Daily study hours").
				Placeholder("6").
				Value(hours),
			huh.NewSelect[string]().
				Title("Best focus window").
				Options(
					huh.NewOption("Morning", "morning"),
					huh.NewOption("Night", "night"),
				).
				Value(chronotype),
		),
	).WithShowHelp(false)
}

func validateExamDate(s string) error {
	if s == "" || s == domain.ExamDateOther {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD or 'other'")
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
