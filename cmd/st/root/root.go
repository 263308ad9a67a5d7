package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studytime/internal/config"
	"studytime/internal/logging"
	"studytime/internal/ui"
	"studytime/pkg/apierrors"
	"studytime/pkg/translator"
)

const Version = "0.1.0"

var (
	configFile string
	dbPath     string

	cfg        *config.Config
	flushLogs  = func() {}
	errorsLang = translator.LanguageEn
)

var rootCmd = &cobra.Command{
	Use:           "st",
	Short:         "Studytime: a local-first study tracker",
	Long:          "Studytime tracks study subjects, tasks and timed sessions, and turns them into streaks, achievements and insights.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func setup() error {
	c, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	cfg = c

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	flushLogs = logging.Install(logger)

	langs := []string{translator.LanguageEn, translator.LanguageFr}
	translator.InitTranslator(translator.Config{SupportedLanguages: langs})
	if translator.Supported(translator.Config{SupportedLanguages: langs}, cfg.Language) {
		errorsLang = cfg.Language
	}

	zap.L().Debug("configured", zap.String("config", cfg.File), zap.String("db", cfg.DBPath))
	return nil
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/studytime/studytime.yml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides db_path)")

	rootCmd.AddCommand(
		newSubjectCmd(),
		newTaskCmd(),
		newSessionCmd(),
		newStatsCmd(),
		newAchievementsCmd(),
		newInsightsCmd(),
		newProfileCmd(),
		newThemeCmd(),
		newBoardCmd(),
		newServeCmd(),
		newReportCmd(),
	)

	err := rootCmd.Execute()
	flushLogs()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+apierrors.Message(err, errorsLang)))
		os.Exit(1)
	}
}
