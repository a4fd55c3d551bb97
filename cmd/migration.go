package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zanyar-dev/botarium/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and exit",
	Run:   runMigrations,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrations(_ *cobra.Command, _ []string) {
	logrus.Info("[MIGRATION] Applying bots schema...")

	botRepo := repository.NewBotGormRepository(db)
	if err := botRepo.InitSchema(context.Background()); err != nil {
		logrus.Fatalf("[MIGRATION] failed: %v", err)
	}

	logrus.Info("[MIGRATION] Done")
	StopApp()
}
