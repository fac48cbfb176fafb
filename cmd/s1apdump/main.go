package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/thebagchi/s1ap-go/lib/config"
	"github.com/thebagchi/s1ap-go/lib/logger"
	"github.com/thebagchi/s1ap-go/lib/s1ap"
)

var (
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:          "s1apdump",
	Short:        "Decode, build and exchange S1AP PDUs",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		if cfg, err = config.Load(path); err != nil {
			return err
		}
		level, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}
		if len(level) == 0 {
			level = cfg.Log.Level
		}
		if err := logger.ParseLogLevel(level); err != nil {
			return err
		}
		s1ap.Variant = cfg.Aligned()
		log = logger.InitLogger(level, map[string]string{"mod": cmd.Name()})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level, overrides the config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
