package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/LJTian/NewsFetcher/internal/collector"
	"github.com/LJTian/NewsFetcher/internal/config"
	"github.com/LJTian/NewsFetcher/internal/logger"
	"github.com/LJTian/NewsFetcher/internal/scheduler"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// 命令行入口：默认执行一次采集并打印；watch 子命令按 cron 周期采集
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	count    int
	category string
	asJSON   bool
	cronSpec string
}

func newRootCmd() *cobra.Command {
	var (
		opts    options
		cfg     *config.Config
		zl      *zap.Logger
		fetcher *collector.BaiduNewsFetcher
	)

	root := &cobra.Command{
		Use:           "collect",
		Short:         "抓取百度新闻列表，失败时输出示例数据",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			var err error
			zl, err = logger.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			fetcher = &collector.BaiduNewsFetcher{
				BaseURL:   cfg.NewsBaseURL,
				UserAgent: cfg.NewsUserAgent,
				Timeout:   cfg.NewsTimeout,
				Logger:    zl.Named("collector"),
			}
			if !cmd.Flags().Changed("count") {
				opts.count = cfg.NewsDefaultCount
			}
			if !cmd.Flags().Changed("category") {
				opts.category = cfg.NewsDefaultCategory
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zl.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := fetcher.Execute(collector.Params{Count: opts.count, Category: opts.category})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), resp, opts.asJSON)
		},
	}
	root.PersistentFlags().IntVarP(&opts.count, "count", "n", 10, "number of news items")
	root.PersistentFlags().StringVarP(&opts.category, "category", "c", collector.DefaultCategory, "news category, e.g. 科技 / tech")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print the raw JSON envelope")

	watch := &cobra.Command{
		Use:   "watch",
		Short: "按 cron 表达式周期性采集，Ctrl+C 退出",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := opts.cronSpec
			if spec == "" {
				spec = cfg.CronSpec
			}
			out := cmd.OutOrStdout()
			sink := func(resp *collector.Response) {
				if err := render(out, resp, opts.asJSON); err != nil {
					zl.Error("render result failed", zap.Error(err))
				}
			}

			s, err := scheduler.New(spec, fetcher, collector.Params{Count: opts.count, Category: opts.category}, sink, zl.Named("scheduler"))
			if err != nil {
				return fmt.Errorf("init scheduler: %w", err)
			}
			// 启动时先跑一轮，再交给 cron
			s.RunOnce()
			s.Start()
			zl.Info("watching", zap.String("cron", spec))

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			s.Stop()
			return nil
		},
	}
	watch.Flags().StringVar(&opts.cronSpec, "cron", "", "cron spec (default: CRON_SPEC)")
	root.AddCommand(watch)

	return root
}

func render(w io.Writer, resp *collector.Response, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(resp)
	}
	_, err := io.WriteString(w, collector.FormatOutput(resp.Data))
	return err
}
