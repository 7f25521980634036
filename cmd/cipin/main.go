package main

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yxzhao7/cipin"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cipin <url>",
		Short: "Fetch a web page and rank its Chinese word frequencies",
		Long: `cipin fetches a web page, strips markup and non-Chinese characters,
segments the remaining text into words, filters them against a stopword
list, and prints the most frequent words as a table, a bar chart, or JSON.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.StringP("stopwords", "s", "", "path to a newline-delimited stopword file (required)")
	flags.IntP("top", "n", cipin.DefaultTopN, "number of ranked words to show")
	flags.StringP("chart", "c", "table", "output format: table, bar or json")
	flags.Duration("timeout", cipin.DefaultFetchTimeout, "fetch timeout")
	flags.StringSlice("user-dict", nil, "extra segmentation dictionary files")
	flags.Bool("html-parser", false, "strip markup with a real HTML parser instead of the tag regexp")
	flags.Bool("show-text", false, "also print the normalized text")
	flags.Bool("debug", false, "dump the ranked records before rendering")

	for _, name := range []string{"stopwords", "top", "chart", "timeout", "user-dict", "html-parser", "show-text", "debug"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	return cmd
}

// Configuration is resolved once per process, before the pipeline runs:
// defaults, then an optional cipin.yaml, then flags.
func loadConfig() {
	viper.SetConfigName("cipin")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home + "/.config/cipin")
	}
	// A missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}

func run(cmd *cobra.Command, args []string) error {
	loadConfig()
	url := args[0]

	var stopWords []string
	if path := viper.GetString("stopwords"); path != "" {
		var err error
		stopWords, err = cipin.LoadStopWords(path)
		if err != nil {
			return err
		}
	}

	options := []cipin.PipelineOption{
		cipin.WithTimeout(viper.GetDuration("timeout")),
		cipin.WithTopN(viper.GetInt("top")),
	}
	if ua := viper.GetString("user_agent"); ua != "" {
		options = append(options, cipin.WithUserAgent(ua))
	}
	if viper.GetBool("html-parser") {
		options = append(options, cipin.WithHTMLTextFilter())
	}

	result, err := cipin.RunWithUserDict(url, stopWords, viper.GetStringSlice("user-dict"), options...)
	if err != nil {
		return err
	}

	if viper.GetBool("debug") {
		pp.Fprintln(cmd.OutOrStdout(), result.Top)
	}
	if viper.GetBool("show-text") {
		fmt.Fprintln(cmd.OutOrStdout(), result.Text)
	}

	out, err := render(viper.GetString("chart"), result)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
