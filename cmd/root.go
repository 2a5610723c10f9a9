package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ghsecrets",
	Short: "Sync local secrets to GitHub Actions",
	Long:  `ghsecrets seals secrets from a local name=value file with the repository public key and publishes them as GitHub Actions repository secrets.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(logo)
		_ = cmd.Usage()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
