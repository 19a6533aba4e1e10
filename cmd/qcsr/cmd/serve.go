package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/qcsr-io/qcsr/pkg/api"
	"github.com/qcsr-io/qcsr/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP inspection server",
	Long: `Start a read-only HTTP server exposing summaries of the .qcsr files
under the data directory.

Examples:
  qcsr serve --data-dir ./data --port 8080
  qcsr serve --config /etc/qcsr/qcsr.yaml --api-key mysecret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			loaded, err := config.LoadConfig(path)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey, _ = cmd.Flags().GetString("api-key")
		}

		level, err := zerolog.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return err
		}
		log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

		server := api.NewServer(api.ServerConfig{
			Bind:    cfg.Bind,
			Port:    cfg.Port,
			APIKey:  cfg.APIKey,
			DataDir: cfg.DataDir,
		}, api.NewMetrics(), log)
		return server.Start()
	},
}

func init() {
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
	serveCmd.Flags().StringP("data-dir", "d", "./data", "Directory containing .qcsr files")
	serveCmd.Flags().String("bind", "127.0.0.1", "Bind address")
	serveCmd.Flags().IntP("port", "p", 8080, "Listen port")
	serveCmd.Flags().String("api-key", "", "API key required on /v1 routes (empty disables auth)")
	rootCmd.AddCommand(serveCmd)
}
