package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"task-suggestion-service/pkg/gcalendar"
)

var calendarTokenPath string

var calendarAuthCmd = &cobra.Command{
	Use:   "calendar-auth [credentials.json]",
	Short: "Authorize Google Calendar export and save the OAuth token",
	Long: `calendar-auth runs the OAuth Desktop App flow once and stores the token
the server reads from google_calendar.token_path. Service Account
credentials need no token.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		credsPath := "google-credentials.json"
		if len(args) > 0 {
			credsPath = args[0]
		}

		data, err := os.ReadFile(credsPath)
		if err != nil {
			return fmt.Errorf("read credentials file %q: %w", credsPath, err)
		}

		config, err := gcalendar.OAuthConfig(data)
		if err != nil {
			return err
		}

		authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
		fmt.Println("Step 1: open this URL and sign in with the calendar's Google account:")
		fmt.Println()
		fmt.Println(color.CyanString("%s", authURL))
		fmt.Println()
		fmt.Print("Step 2: paste the authorization code and press Enter: ")

		var code string
		if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
			return fmt.Errorf("read authorization code: %w", err)
		}

		tok, err := config.Exchange(cmd.Context(), code)
		if err != nil {
			return fmt.Errorf("exchange authorization code: %w", err)
		}

		if err := gcalendar.SaveToken(calendarTokenPath, tok); err != nil {
			return err
		}

		printStatus("✓", fmt.Sprintf("token saved to %s; restart the server to enable calendar export", calendarTokenPath), color.FgGreen)
		return nil
	},
}

func init() {
	calendarAuthCmd.Flags().StringVar(&calendarTokenPath, "token", gcalendar.TokenFile, "where to write the OAuth token")
}
