package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "atsmatch"
)

type Config struct {
	Resume string     `mapstructure:"resume"`
	Job    *JobConfig `mapstructure:"job"`
	JSON   bool       `mapstructure:"json"`
	Out    string     `mapstructure:"out"`
}

type JobConfig struct {
	File string `mapstructure:"file"`
	Text string `mapstructure:"text"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "atsmatch scores a resume against a job description by keyword overlap",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			run()
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("resume", "ATSMATCH_RESUME"); err != nil {
		log.Fatalf("binding ATSMATCH_RESUME environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is atsmatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().Bool("log-json", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("log-json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	// Printing the version needs no configuration.
	if versionCmd.CalledAs() != "" {
		return
	}

	// A .env file may provide ATSMATCH_* variables for local runs.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	if err := viper.ReadInConfig(); err != nil {
		// Without an explicit --config the config file is optional.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
