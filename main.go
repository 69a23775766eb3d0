package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"slate/internal/agent"
	"slate/internal/api"
	"slate/internal/client"
	"slate/internal/config"
	"slate/internal/service"
	"slate/internal/store"
	"slate/internal/tools"
	"slate/internal/ui"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "slate",
	Short: "SLATE Repurpose - turn raw transcripts into B2B social assets",
	Long: `SLATE Repurpose classifies a raw transcript into a domain, swaps in
domain vocabulary and renders an analysis, a LinkedIn post, an X thread and a
60s video script.

Run without arguments to start the service.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		return config.InitLogger(cfg.Log.Level)
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the repurpose HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the terminal dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yml", "path to the YAML config file")
	rootCmd.AddCommand(serveCmd, dashboardCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer() error {
	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()
	repurposeAgent, err := agent.NewRepurposeAgent(ctx)
	if err != nil {
		return fmt.Errorf("init agent: %w", err)
	}
	svc := service.NewRepurposeService(repurposeAgent)

	router := api.NewRouter(api.Deps{
		Agent:          repurposeAgent,
		Service:        svc,
		Tool:           tools.NewRepurposeTool(svc),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Server running on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("启动服务器失败: %w", err)
	case <-quit:
	}
	logrus.Info("关闭服务器...")

	// 给进行中的请求留出模拟延迟的时间
	shutdownCtx, cancel := context.WithTimeout(context.Background(), service.ResponseDelay+3*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务器关闭失败: %w", err)
	}

	logrus.Info("服务器已关闭")
	return nil
}

func runDashboard() error {
	logFile, err := config.InitLogFile(cfg.Client.LogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	formStore, err := store.NewFormStore(cfg.Client.StorePath)
	if err != nil {
		return err
	}
	defer formStore.Close()

	form, err := formStore.Load(context.Background())
	if err != nil {
		logrus.WithError(err).Warn("starting with an empty form")
	}

	return ui.Run(ui.Options{
		Client:    client.New(cfg.Client.APIURL),
		Store:     formStore,
		Form:      form,
		Clipboard: clipboard.WriteAll,
	})
}
