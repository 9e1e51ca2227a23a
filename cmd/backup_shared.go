package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eslsoft/conjugator/internal/entity"
)

func languagesFromConfig(key string) []string {
	return normalizeLanguages(viper.GetStringSlice(key))
}

// normalizeLanguages resolves codes and names into unique language codes,
// dropping the ones the engine has no rules for.
func normalizeLanguages(values []string) []string {
	codes := lo.FilterMap(values, func(value string, _ int) (string, bool) {
		lang := entity.ParseLanguage(strings.TrimSpace(value))
		return lang.Code(), lang.IsConjugable()
	})
	if len(codes) == 0 {
		return nil
	}
	return lo.Uniq(codes)
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}
