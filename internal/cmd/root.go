// Package cmd wires the tintmatch CLI.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "tintmatch",
		Short: "Compare colors and get tint-mixing guidance",
		Long: `tintmatch compares a reference color against a sample and reports the
perceptual difference (CIE76 ΔE) together with tint-adjustment guidance.
Colors can be given as hex strings or extracted from photos of paint swatches.`,
		Version: "1.0.0",
	}
)

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tintmatch.yaml)")
	rootCmd.PersistentFlags().String("store", "", "project store directory (default is $HOME/.tintmatch/projects)")
	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))

	// Load environment variables from a .env file in the current directory.
	// A missing .env is fine; only real errors are worth a warning.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
		}
	}
}

// initConfig reads in the config file and TINTMATCH_* env variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tintmatch")
	}

	viper.SetEnvPrefix("tintmatch")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// storeDir resolves the project store directory from flag, env, or default.
func storeDir() (string, error) {
	if dir := viper.GetString("store"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".tintmatch", "projects"), nil
}
