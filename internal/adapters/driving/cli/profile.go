package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your learning profile",
	RunE:  runProfileShow,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE:  runProfileShow,
}

var profileNameCmd = &cobra.Command{
	Use:   "name [name]",
	Short: "Set your name",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileName,
}

var profileSubjectsCmd = &cobra.Command{
	Use:   "subjects [subject...]",
	Short: "Add subjects you are studying",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProfileSubjects,
}

var profileWeakCmd = &cobra.Command{
	Use:   "weak [topic]",
	Short: "Flag a topic you are struggling with",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileWeak,
}

var profileDoneCmd = &cobra.Command{
	Use:   "done [topic]",
	Short: "Mark a topic as completed",
	Long: `Marks a topic as completed. If the topic was flagged as weak, it is
removed from the weak list at the same time.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileDone,
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileNameCmd)
	profileCmd.AddCommand(profileSubjectsCmd)
	profileCmd.AddCommand(profileWeakCmd)
	profileCmd.AddCommand(profileDoneCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	summary, err := profileService.Summary(context.Background())
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	cmd.Print(summary)

	profile, err := profileService.Profile(context.Background())
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if len(profile.History) > 0 {
		cmd.Printf("Recent Questions: %d\n", len(profile.History))
	}

	return nil
}

func runProfileName(_ *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}
	return profileService.UpdateIdentity(context.Background(), args[0], nil)
}

func runProfileSubjects(_ *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}
	return profileService.UpdateIdentity(context.Background(), "", args)
}

func runProfileWeak(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}
	if err := profileService.FlagWeakTopic(context.Background(), args[0]); err != nil {
		return err
	}
	cmd.Printf("Flagged %q for extra practice.\n", args[0])
	return nil
}

func runProfileDone(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}
	if err := profileService.MarkCompleted(context.Background(), args[0]); err != nil {
		return err
	}
	cmd.Printf("Marked %q as completed. Great job!\n", args[0])
	return nil
}
