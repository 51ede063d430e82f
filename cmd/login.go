package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/openexhibits/exhibits-admin/internal/api"
	"github.com/openexhibits/exhibits-admin/internal/auth"
	"github.com/openexhibits/exhibits-admin/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the exhibits backend",
	Long: `Exchanges your credentials for an access token and stores it in
~/.exhibits-admin/credentials.json for the upload and agent commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		userPrompt := promptui.Prompt{Label: "Username"}
		username, err := userPrompt.Run()
		if err != nil {
			return fmt.Errorf("username: %w", err)
		}

		passPrompt := promptui.Prompt{Label: "Password", Mask: '*'}
		password, err := passPrompt.Run()
		if err != nil {
			return fmt.Errorf("password: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client := api.New(cfg.BackendURL)
		token, user, err := client.Login(ctx, username, password)
		if err != nil {
			return fmt.Errorf("logging in: %w", err)
		}

		if err := auth.Save(&auth.Credentials{Token: token, Username: user.Username}); err != nil {
			return err
		}

		fmt.Printf("Signed in as %s\n", user.Username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
