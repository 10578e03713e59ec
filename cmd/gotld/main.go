package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/0990/gotld"
	"github.com/0990/gotld/internal/version"
	"github.com/0990/gotld/pkg/logconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	confFile     string
	sourceURL    string
	sourceFile   string
	allowPrivate bool
	timeoutSec   int
	showStats    bool
	outPath      string

	rootCmd = &cobra.Command{
		Use:     "gotld",
		Short:   "gotld extracts registrable domains using the public suffix list",
		Version: version.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	resolveCmd = &cobra.Command{
		Use:   "resolve [flags] url...",
		Short: "Print the registrable domain of each URL or hostname",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			f, err := newManager()
			if err != nil {
				logrus.Fatalln(err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
			defer cancel()

			if err := f.Init(ctx); err != nil {
				logrus.Fatalln(err)
			}

			results := make([]string, len(args))
			eg, _ := errgroup.WithContext(ctx)
			for i, arg := range args {
				eg.Go(func() error {
					res, err := f.Extract(arg)
					if err != nil {
						results[i] = fmt.Sprintf("%s\tERROR: %v", arg, err)
						return nil
					}
					results[i] = fmt.Sprintf("%s\t%s\t(suffix: %s)", arg, res.RegistrableDomain, res.PublicSuffix)
					return nil
				})
			}
			_ = eg.Wait()

			for _, line := range results {
				fmt.Println(line)
			}

			if showStats {
				printStats(f.Stats())
			}
		},
	}

	fetchCmd = &cobra.Command{
		Use:   "fetch [flags]",
		Short: "Download the public suffix list to a local file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
			defer cancel()

			if err := gotld.SaveList(ctx, sourceURL, outPath, time.Duration(timeoutSec)*time.Second); err != nil {
				logrus.Fatalln(err)
			}
			fmt.Println("saved to", outPath)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&confFile, "config", "c", "", "JSON config file")
	rootCmd.PersistentFlags().StringVar(&sourceURL, "url", "", "public suffix list URL")
	rootCmd.PersistentFlags().StringVar(&sourceFile, "file", "", "local public suffix list file")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", 10, "fetch timeout in seconds")

	resolveCmd.Flags().BoolVar(&allowPrivate, "private", false, "include private-section suffixes")
	resolveCmd.Flags().BoolVar(&showStats, "stats", false, "print ruleset statistics")
	fetchCmd.Flags().StringVarP(&outPath, "out", "o", "public_suffix_list.dat", "output file")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(fetchCmd)
}

func newManager() (*gotld.FQDN, error) {
	var opts []gotld.Option

	if confFile != "" {
		file, err := os.Open(confFile)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		var cfg gotld.Config
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, err
		}

		if cfg.LogLevel != "" {
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return nil, err
			}
			logconfig.InitLogrus(version.Name, 10, level)
		}

		opts = cfg.Options()
	}

	if sourceURL != "" {
		opts = append(opts, gotld.WithSourceURL(sourceURL))
	}
	if sourceFile != "" {
		opts = append(opts, gotld.WithSourceFile(sourceFile))
	}
	if allowPrivate {
		opts = append(opts, gotld.WithAllowPrivateTLDs(true))
	}
	if timeoutSec > 0 {
		opts = append(opts, gotld.WithTimeout(time.Duration(timeoutSec)*time.Second))
	}

	return gotld.New(opts...)
}

func printStats(s gotld.Stats) {
	fmt.Printf("rules: %d (icann: %d, private: %d, wildcard: %d, exception: %d)\n",
		s.RulesTotal, s.RulesICANN, s.RulesPrivate, s.RulesWildcard, s.RulesException)

	depths := make([]int, 0, len(s.RulesByDepth))
	for d := range s.RulesByDepth {
		depths = append(depths, d)
	}
	sort.Ints(depths)
	for _, d := range depths {
		fmt.Printf("  %d labels: %d\n", d, s.RulesByDepth[d])
	}
	fmt.Printf("lookups: %d, cache hits: %d\n", s.Lookups, s.CacheHits)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
