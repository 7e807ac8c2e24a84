package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/adapters/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		driver, dsn, ok := cfg.DatabaseDriver()
		if !ok {
			log.Printf("[STORE] Store driver %q has no schema, nothing to migrate", cfg.StoreDriver)
			return nil
		}

		if err := repository.RunMigrations(driver, dsn); err != nil {
			return err
		}

		log.Println("[STORE] Migrations applied")
		return nil
	},
}
