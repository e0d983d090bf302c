// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "web-sub000",
	Short: "web-sub000 is a bilingual marketing site and content dashboard",
	Long: `web-sub000 serves the public Arabic/English marketing website of a
forensic and civil-protection consulting firm together with an admin
dashboard for managing its content (services, blog, testimonials,
certifications, media, navigation, users and contact messages).`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
