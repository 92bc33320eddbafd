// Comando trendwise expõe a pontuação e o otimizador de agenda pela linha de comando
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"github.com/vfg2006/trendwise-api/infrastructure/repository"
	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/internal/usecases/posting"
	"github.com/vfg2006/trendwise-api/internal/usecases/scheduling"
	"github.com/vfg2006/trendwise-api/internal/usecases/scoring"
	"github.com/vfg2006/trendwise-api/pkg/cache"
	"github.com/vfg2006/trendwise-api/pkg/random"
	"github.com/vfg2006/trendwise-api/pkg/utils"
)

// services agrupa os casos de uso usados pelos comandos
type services struct {
	scorer    scoring.Scorer
	optimizer scheduling.Optimizer
	posting   posting.PostingService
}

type serviceFactory func(seed int64) services

func defaultServices(seed int64) services {
	rng := random.New(seed)
	optimizer := scheduling.NewService(domain.DefaultCatalog(), rng, nil)

	return services{
		scorer:    scoring.NewService(rng),
		optimizer: optimizer,
		posting: posting.NewService(
			repository.NewScheduledPostRepository(),
			optimizer,
			cache.New(0), // uma execução por processo, nada a reaproveitar
			rng,
			"UTC",
		),
	}
}

func newRootCmd(factory serviceFactory, stdin io.Reader) *cobra.Command {
	var seed int64

	rootCmd := &cobra.Command{
		Use:           "trendwise",
		Short:         "trendwise - content scoring and posting schedule optimizer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed (0 uses the clock)")

	rootCmd.AddCommand(
		newScoreCmd(func() services { return factory(seed) }, stdin),
		newScheduleCmd(func() services { return factory(seed) }),
		newOptimizeCmd(func() services { return factory(seed) }),
		newInsightsCmd(func() services { return factory(seed) }),
	)

	return rootCmd
}

func newScoreCmd(svc func() services, stdin io.Reader) *cobra.Command {
	var (
		file     string
		keywords string
		platform string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score content read from a file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(file, stdin)
			if err != nil {
				return err
			}

			bundle := svc().scorer.Score(content, splitKeywords(keywords), platform)
			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(bundle))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Content file (default: stdin)")
	cmd.Flags().StringVarP(&keywords, "keywords", "k", "", "Comma separated target keywords")
	cmd.Flags().StringVarP(&platform, "platform", "p", "website", "Target platform (website, social_media, email)")

	return cmd
}

func newScheduleCmd(svc func() services) *cobra.Command {
	var contentType, audience, platform string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate the weekly posting schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc().optimizer.GenerateSchedule(contentType, audience, platform)
			if err != nil {
				return fmt.Errorf("generate schedule: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&contentType, "content-type", "c", "blog", "Content type")
	cmd.Flags().StringVarP(&audience, "audience", "a", "general", "Target audience")
	cmd.Flags().StringVarP(&platform, "platform", "p", "website", "Platform profile")

	return cmd
}

func newOptimizeCmd(svc func() services) *cobra.Command {
	var (
		contentType, audience, timezone string
		n                               int
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "List the next suggested posting datetimes",
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions := svc().optimizer.Optimize(contentType, audience, timezone, n)
			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(suggestions))
			return nil
		},
	}

	cmd.Flags().StringVarP(&contentType, "content-type", "c", "blog", "Content type")
	cmd.Flags().StringVarP(&audience, "audience", "a", "general", "Target audience")
	cmd.Flags().StringVarP(&timezone, "timezone", "t", "UTC", "IANA timezone")
	cmd.Flags().IntVarP(&n, "num", "n", 5, "Number of suggestions")

	return cmd
}

func newInsightsCmd(svc func() services) *cobra.Command {
	var contentType, audience string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Summarize the best posting window and days",
		RunE: func(cmd *cobra.Command, args []string) error {
			insights, err := svc().posting.Insights(contentType, audience)
			if err != nil {
				return fmt.Errorf("posting insights: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(insights))
			return nil
		},
	}

	cmd.Flags().StringVarP(&contentType, "content-type", "c", "social_post", "Content type")
	cmd.Flags().StringVarP(&audience, "audience", "a", "general", "Target audience")

	return cmd
}

func readContent(file string, stdin io.Reader) (string, error) {
	if file == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read content file: %w", err)
	}
	return string(data), nil
}

func splitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func main() {
	if err := newRootCmd(defaultServices, os.Stdin).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
