package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tripline/internal/config"
	"github.com/example/tripline/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize tripline config and database",
		Long: `Write .tripline/config.json in the current directory and create the
database (default ~/.tripline/tripline.db) with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, _ := cmd.Flags().GetString("actor")
			dbPath, _ := cmd.Flags().GetString("db")
			seed, _ := cmd.Flags().GetBool("seed")

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			cfg := &config.Config{Actor: actor, DBPath: dbPath}
			if cfg.Actor == "" {
				cfg.Actor = config.DefaultActor()
			}
			if err := config.SaveConfig(cwd, cfg); err != nil {
				return err
			}
			fmt.Printf("✓ Config written to %s\n", config.Path(cwd))

			if dbPath != "" {
				db.SetPath(dbPath)
			}
			path, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			conn, err := db.GetDB()
			if err != nil {
				return err
			}
			fmt.Printf("✓ Database initialized at %s\n", path)

			if seed {
				if err := db.SeedFixtures(conn); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Println("✓ Demo trips seeded")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  tripline trip create PO-1001")
			fmt.Println("  tripline trip list")
			return nil
		},
	}
	cmd.Flags().String("actor", "", "Name recorded on trip events (default: $USER)")
	cmd.Flags().String("db", "", "Database path (default: ~/.tripline/tripline.db)")
	cmd.Flags().Bool("seed", false, "Insert demo trips")
	return cmd
}
