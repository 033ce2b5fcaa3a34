package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/pulsr-app/pulsr/internal/cli/formatter"
	"github.com/pulsr-app/pulsr/internal/questionnaire"
	"github.com/spf13/cobra"
)

func newOnboardCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Answer the personality questionnaire",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("onboard requires an interactive terminal")
			}
			if userID == "" {
				userID = uuid.NewString()
			}

			var firstName, lastName, interestText, positioning string
			identity := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("First name").
						Value(&firstName).
						Validate(func(s string) error {
							if s == "" {
								return fmt.Errorf("first name is required")
							}
							return nil
						}),
					huh.NewInput().
						Title("Last name").
						Value(&lastName),
				),
			).WithTheme(pulsrHuhTheme()).WithShowHelp(false)
			if err := identity.Run(); err != nil {
				return err
			}

			bank := questionnaire.DefaultBank()
			answers, err := runQuestionnaire(bank)
			if err != nil {
				return err
			}

			extras := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Interests").
						Description("Comma-separated topics you care about").
						Placeholder("e.g. woodworking, personal finance").
						Value(&interestText),
					huh.NewInput().
						Title("Positioning statement").
						Description("One sentence: who you help and how").
						Value(&positioning),
				),
			).WithTheme(pulsrHuhTheme()).WithShowHelp(false)
			if err := extras.Run(); err != nil {
				return err
			}

			if err := app.Profiles.SaveOnboarding(context.Background(), userID,
				firstName, lastName, answers, interestText, positioning); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("Saved."), formatter.Dim("User ID: "+userID))
			fmt.Fprintln(out, formatter.Dim("Run `pulsr regenerate --user "+userID+"` to build your content profile."))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID (a new one is generated when omitted)")

	return cmd
}

// runQuestionnaire walks the question bank one huh form at a time and collects
// the answers keyed by question key.
func runQuestionnaire(bank []questionnaire.Question) (questionnaire.Answers, error) {
	answers := make(questionnaire.Answers, len(bank))

	for _, q := range bank {
		switch q.Type {
		case questionnaire.QuestionChoice:
			var picked string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title(q.Prompt).
						Options(choiceOptions(q)...).
						Value(&picked),
				),
			).WithTheme(pulsrHuhTheme()).WithShowHelp(false)
			if err := form.Run(); err != nil {
				return nil, err
			}
			answers[q.Key] = questionnaire.Answer{OptionID: picked}

		case questionnaire.QuestionSlider:
			var level int
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[int]().
						Title(q.Prompt).
						Options(sliderOptions(q)...).
						Value(&level),
				),
			).WithTheme(pulsrHuhTheme()).WithShowHelp(false)
			if err := form.Run(); err != nil {
				return nil, err
			}
			answers[q.Key] = questionnaire.Answer{Level: level}
		}
	}

	return answers, nil
}

func choiceOptions(q questionnaire.Question) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, huh.NewOption(opt.Label, opt.ID))
	}
	return options
}

// sliderOptions renders an ordinal scale as a select, labeling the two ends.
func sliderOptions(q questionnaire.Question) []huh.Option[int] {
	options := make([]huh.Option[int], 0, q.Max-q.Min+1)
	for v := q.Min; v <= q.Max; v++ {
		label := strconv.Itoa(v)
		switch v {
		case q.Min:
			label = fmt.Sprintf("%d — %s", v, q.MinLabel)
		case q.Max:
			label = fmt.Sprintf("%d — %s", v, q.MaxLabel)
		}
		options = append(options, huh.NewOption(label, v))
	}
	return options
}
