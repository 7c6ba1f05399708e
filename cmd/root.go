package cmd

import "github.com/spf13/cobra"

var (
	rootCmd = &cobra.Command{
		Use:   "todo",
		Short: "A small todo HTTP service",
		Long:  `Todo serves create, list, update and delete over a PostgreSQL todo table`,
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
