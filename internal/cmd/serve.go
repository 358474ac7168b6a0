package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tintlab/tintmatch/internal/project"
	"github.com/tintlab/tintmatch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  `Serve the conversion, comparison, and project endpoints over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := storeDir()
		if err != nil {
			return err
		}
		store, err := project.NewStore(dir)
		if err != nil {
			return err
		}

		addr := viper.GetString("addr")
		fmt.Printf("Project store: %s\n", store.Dir())
		fmt.Printf("Listening on %s\n", addr)
		return http.ListenAndServe(addr, server.New(store).Handler())
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}
