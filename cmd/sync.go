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
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/conjugator/internal/adapter/vocabulary"
	"github.com/eslsoft/conjugator/internal/app"
	"github.com/eslsoft/conjugator/internal/usecase"
)

const (
	syncFileKey    = "sync.vocabulary_file"
	syncWorkersKey = "sync.workers"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Conjugate a vocabulary file and store the new verbs",
	Long: `sync reads verb candidates from a YAML or JSON vocabulary file, runs the
conjugation engine on each one and stores the tables of verbs not stored yet.
Entries that are not a recognized verb pattern are counted and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString(syncFileKey)
		if path == "" {
			return fmt.Errorf("a vocabulary file is required (--file or SYNC_VOCABULARY_FILE)")
		}
		candidates, err := vocabulary.LoadFile(path)
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
		printSyncReport(cmd.OutOrStdout(), path, report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringP("file", "f", "", "vocabulary file (.yaml, .yml or .json)")
	syncCmd.Flags().Int("workers", 0, "concurrent candidates (default from config, 4)")
	bindFlagToViper(syncFileKey, syncCmd.Flags().Lookup("file"))
	bindFlagToViper(syncWorkersKey, syncCmd.Flags().Lookup("workers"))
}

func printSyncReport(out io.Writer, source string, report *usecase.SyncReport) {
	fmt.Fprintf(out, "synced %s: %d candidates\n", source, report.Total())
	fmt.Fprintf(out, "  inserted:     %d\n", report.Inserted)
	fmt.Fprintf(out, "  skipped:      %d\n", report.Skipped)
	fmt.Fprintf(out, "  unrecognized: %d\n", report.Unrecognized)
	fmt.Fprintf(out, "  unsupported:  %d\n", report.Unsupported)
}
