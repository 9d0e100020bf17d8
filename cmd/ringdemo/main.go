// ringdemo 按配置文件执行一个环形缓冲区场景并输出报告.
//
// 用法:
//
//	ringdemo -config ringdemo.yaml [-metrics-addr :9100]
//
// 设置 -metrics-addr 时，场景执行完毕后继续暴露 Prometheus 指标，直到收到 SIGINT 或 SIGTERM.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tsukikage7/ringkit/config"
	"github.com/Tsukikage7/ringkit/logger"
	"github.com/Tsukikage7/ringkit/metrics"
	"github.com/Tsukikage7/ringkit/scenario"
	"github.com/Tsukikage7/ringkit/server"
)

func main() {
	configPath := flag.String("config", "ringdemo.yaml", "场景配置文件路径（yaml、json 或 toml）")
	metricsAddr := flag.String("metrics-addr", "", "执行完毕后暴露指标的监听地址，为空时直接退出")
	flag.Parse()

	if err := run(*configPath, *metricsAddr, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, metricsAddr string, out io.Writer) error {
	cfg, err := config.Load[scenario.Config](configPath)
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return err
	}
	defer log.Close()

	collector, err := metrics.NewMetrics(&cfg.Metrics)
	if err != nil {
		return err
	}

	runner, err := scenario.NewRunner(cfg,
		scenario.WithLogger(log),
		scenario.WithMetrics(collector),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := runner.Run(ctx)
	if report != nil {
		printReport(out, report)
	}
	if err != nil {
		return err
	}

	if metricsAddr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(collector.GetPath(), collector.GetHandler())

	httpSrv, err := server.NewHTTP(mux,
		server.WithHTTPAddr(metricsAddr),
		server.WithHTTPLogger(log),
	)
	if err != nil {
		return err
	}

	return server.NewApp(
		server.WithName("ringdemo"),
		server.WithLogger(log),
	).Use(httpSrv).Run(ctx)
}

func printReport(w io.Writer, report *scenario.Report) {
	fmt.Fprintf(w, "scenario %s (%s) run %s\n", report.Name, report.Target, report.RunID)
	for i, res := range report.Results {
		switch {
		case res.Err != nil:
			fmt.Fprintf(w, "  %2d %-10s error: %v\n", i, res.Step.Op, res.Err)
		case res.HasValue:
			fmt.Fprintf(w, "  %2d %-10s -> %d\n", i, res.Step.Op, res.Value)
		default:
			fmt.Fprintf(w, "  %2d %-10s ok\n", i, res.Step.Op)
		}
	}
	fmt.Fprintf(w, "executed=%d failed=%d len=%d cap=%d parted=%t sorted=%t\n",
		report.Executed, report.Failed, report.Len, report.Cap, report.Parted, report.Sorted)
	fmt.Fprintf(w, "contents: %s\n", report.Output)
}
