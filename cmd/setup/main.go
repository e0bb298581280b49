package main

import (
	"fmt"
	"os"

	"schedule-bot/internal/models/config"
	"schedule-bot/internal/repository/meeting"
	"schedule-bot/internal/repository/schedule"
	"schedule-bot/internal/repository/subject"
	importer_service "schedule-bot/internal/service/importer"
	database "schedule-bot/pkg"
	"schedule-bot/pkg/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dbDriver string
	dbPath   string
	dataDir  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "setup",
	Short: "Prepare the schedule database",
	Long:  "Creates the schema and loads packed timetable exports into the schedule database.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbDriver, "driver", "", "Database driver: postgres or sqlite (default: $DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite file (default: $DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create tables if they do not exist",
		RunE:  runMigrate,
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Migrate and import subjects.packed, schedule.packed and optional meetings",
		RunE:  runImport,
	}
	importCmd.Flags().StringVar(&dataDir, "data-dir", "data", "Directory with *.packed files")

	rootCmd.AddCommand(migrateCmd, importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func open() (*sqlx.DB, *zap.Logger, error) {
	cfg := config.LoadDatabase()
	if dbDriver != "" {
		cfg.Driver = dbDriver
	}
	if dbPath != "" {
		cfg.Path = dbPath
	}

	log, err := logger.New(&config.Config{Environment: "development", LogLevel: logLevel})
	if err != nil {
		return nil, nil, err
	}

	db, err := database.New(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return db, log, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, log, err := open()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(cmd.Context(), db); err != nil {
		return err
	}
	log.Info("schema is up to date")
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	db, log, err := open()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(cmd.Context(), db); err != nil {
		return err
	}

	importer := importer_service.NewImportService(
		subject.NewSubjectRepository(db),
		schedule.NewScheduleRepository(db),
		meeting.NewMeetingRepository(db),
		log,
	)

	report, err := importer.Import(cmd.Context(), dataDir)
	if err != nil {
		return err
	}

	fmt.Printf("imported %d subjects, %d schedule entries, %d meetings, %d assignments (%d failed), run %s\n",
		report.Subjects, report.Schedule, report.Meetings, report.Assignments, report.Failed, report.RunID)
	return nil
}
