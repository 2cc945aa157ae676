package cmd

import (
	"errors"
	"fmt"

	"github.com/as1coder/portfolioBuilder/internal/app"
	"github.com/as1coder/portfolioBuilder/internal/config"
	"github.com/as1coder/portfolioBuilder/internal/dashboard"
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/imageenc"
	"github.com/spf13/cobra"
)

var avatarCmd = &cobra.Command{
	Use:   "avatar <userid> <file>",
	Short: "Set a profile image from a local file",
	Long: `Avatar stores an image file as the user's profile photo, applying the
same size and type checks as the dashboard upload. The user must already
have a profile.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		src, err := imageenc.FromFile(appFs, args[1])
		if err != nil {
			return err
		}
		return withBackend(ctx, func(_ config.Provider, b *app.Backend) error {
			existing, err := b.Store.GetProfile(ctx, args[0])
			if err != nil {
				return err
			}
			if existing == nil {
				return fmt.Errorf("profile %s: %w", args[0], domain.ErrNotFound)
			}

			profile, err := dashboard.New(b.Store).UpdateImage(ctx, args[0], src)
			if err != nil {
				if msg := imageenc.Message(err); msg != "" {
					return errors.New(msg)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile image updated for %s (%d bytes)\n", args[0], len(profile.PhotoURL))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(avatarCmd)
}
