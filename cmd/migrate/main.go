package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/homevista/realtor-api/internal/config"
	dbpkg "github.com/homevista/realtor-api/internal/db"
)

func openDB() (*gorm.DB, error) {
	cfg := config.Load()
	return gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{})
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the schema for all models",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			if err := db.AutoMigrate(dbpkg.AllModels()...); err != nil {
				return err
			}
			fmt.Println("schema up to date")
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which model tables exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			m := db.Migrator()
			for _, model := range dbpkg.AllModels() {
				state := "missing"
				if m.HasTable(model) {
					state = "present"
				}
				fmt.Printf("%-30T %s\n", model, state)
			}
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate all model tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset drops every table; re-run with --yes")
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			if err := db.Migrator().DropTable(dbpkg.AllModels()...); err != nil {
				return err
			}
			if err := db.AutoMigrate(dbpkg.AllModels()...); err != nil {
				return err
			}
			fmt.Println("schema reset")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the destructive reset")
	return cmd
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Realtor API schema migration tool",
	}

	rootCmd.AddCommand(
		upCmd(),
		statusCmd(),
		resetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
