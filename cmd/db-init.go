/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/conjugator/internal/adapter/vocabulary"
	"github.com/eslsoft/conjugator/internal/app"
	"github.com/eslsoft/conjugator/internal/infrastructure/config"
	"github.com/eslsoft/conjugator/internal/infrastructure/database"
)

const dbInitSeedKey = "db_init.seed"

// dbInitCmd creates the schema and optionally seeds it from a vocabulary file
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "Create the database schema and optionally seed it",
	Long:  "Creates the verbs and conjugations tables. With --seed, the given vocabulary file is synced afterwards. go-sqlite3 requires a CGO_ENABLED=1 build.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runMigrations(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("database schema ready")

		seed := viper.GetString(dbInitSeedKey)
		if seed == "" {
			return nil
		}
		candidates, err := vocabulary.LoadFile(seed)
		if err != nil {
			return err
		}
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize app: %w", err)
		}
		defer cleanup()

		report, err := container.Conjugation.Sync(cmd.Context(), candidates)
		if err != nil {
			return err
		}
		printSyncReport(cmd.OutOrStdout(), seed, report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbInitCmd)
	dbInitCmd.Flags().String("seed", "", "vocabulary file to sync after the schema is created")
	bindFlagToViper(dbInitSeedKey, dbInitCmd.Flags().Lookup("seed"))
}

// runMigrations applies the schema to the configured database.
func runMigrations(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return err
	}
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(parent, 30*time.Second)
	defer cancel()

	if err := database.MigrateDSN(ctx, driver, dsn); err != nil {
		return fmt.Errorf("migrate %s database: %w", driver, err)
	}
	return nil
}
