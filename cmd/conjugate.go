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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/conjugator/internal/conjugation"
	"github.com/eslsoft/conjugator/internal/entity"
)

var conjugateCmd = &cobra.Command{
	Use:   "conjugate <infinitive>",
	Short: "Print the conjugation table of a verb",
	Example: `  conjugator conjugate hablar --lang es
  conjugator conjugate finir --lang fr --tense preterite
  conjugator conjugate spielen --lang de --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		langFlag := viper.GetString("conjugate.lang")
		tenseFlag := viper.GetString("conjugate.tense")
		asJSON := viper.GetBool("conjugate.json")

		lang := entity.ParseLanguage(langFlag)
		if !lang.IsConjugable() {
			return fmt.Errorf("%q: %w", langFlag, entity.ErrUnsupportedLanguage)
		}
		var only entity.Tense
		if tenseFlag != "" {
			t, ok := entity.ParseTense(tenseFlag)
			if !ok || !entity.HasTense(lang, t) {
				return fmt.Errorf("tense %q is not defined for %s", tenseFlag, lang)
			}
			only = t
		}

		engine, err := conjugation.New()
		if err != nil {
			return err
		}
		conj, ok := engine.Conjugate(args[0], lang)
		if !ok {
			return fmt.Errorf("%s (%s): %w", args[0], lang, entity.ErrVerbNotRecognized)
		}
		if asJSON {
			return writeConjugationJSON(cmd.OutOrStdout(), conj, only)
		}
		return renderConjugation(cmd.OutOrStdout(), conj, only)
	},
}

func init() {
	rootCmd.AddCommand(conjugateCmd)

	conjugateCmd.Flags().StringP("lang", "l", "es", "language code: es, fr or de")
	conjugateCmd.Flags().StringP("tense", "t", "", "print a single tense")
	conjugateCmd.Flags().Bool("json", false, "print the table as JSON")

	bindFlagToViper("conjugate.lang", conjugateCmd.Flags().Lookup("lang"))
	bindFlagToViper("conjugate.tense", conjugateCmd.Flags().Lookup("tense"))
	bindFlagToViper("conjugate.json", conjugateCmd.Flags().Lookup("json"))
}

// renderConjugation writes one aligned block per tense.
func renderConjugation(out io.Writer, conj *entity.Conjugation, only entity.Tense) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s (%s)\n", conj.Infinitive, conj.Language)
	for _, tf := range conj.Ordered() {
		if only != 0 && tf.Tense != only {
			continue
		}
		fmt.Fprintf(tw, "\n%s\n", tf.Tense)
		for _, slot := range entity.PersonSlots() {
			fmt.Fprintf(tw, "  %s\t%s\n", slot.Pronoun(conj.Language), tf.Forms.At(slot))
		}
	}
	return tw.Flush()
}

func writeConjugationJSON(out io.Writer, conj *entity.Conjugation, only entity.Tense) error {
	tenses := make(map[string][]string, len(conj.Tenses))
	for _, tf := range conj.Ordered() {
		if only != 0 && tf.Tense != only {
			continue
		}
		tenses[tf.Tense.String()] = tf.Forms[:]
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"infinitive": conj.Infinitive,
		"language":   conj.Language.Code(),
		"tenses":     tenses,
	})
}
