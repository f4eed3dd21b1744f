package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/config"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/dummyjson"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/repository/postgresql"
	"github.com/spf13/cobra"
)

var (
	pageSize int
	limit    int
)

// rootCmd copies the demo users API into the employees table so EMPLOYEE_SOURCE=postgres has data.
var rootCmd = &cobra.Command{
	Use:           "seed",
	Short:         "Import the demo roster into PostgreSQL",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSeed,
}

func init() {
	rootCmd.Flags().IntVar(&pageSize, "page-size", 50, "users requested per upstream call")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "stop after this many employees (0 imports everything)")
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	if pageSize < 1 {
		return fmt.Errorf("--page-size must be positive")
	}
	if limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	cfg, err := config.LoadSeeder()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: 2})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	repo := postgresql.NewEmployeeRepository(db)
	client := dummyjson.NewClient(dummyjson.Options{
		BaseURL:           cfg.Source.BaseURL,
		Timeout:           cfg.Source.Timeout,
		RequestsPerSecond: cfg.Source.RequestsPerSecond,
		Burst:             cfg.Source.Burst,
	}, slog.Default())

	written, err := seed(ctx, client, repo, pageSize, limit)
	if err != nil {
		return fmt.Errorf("after %d employees: %w", written, err)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count employees: %w", err)
	}
	slog.Info("Seeding finished", "written", written, "total", total)
	return nil
}

func seed(ctx context.Context, source employee.EmployeeSource, repo employee.EmployeeRepository, pageSize, limit int) (int, error) {
	if err := repo.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	written := 0
	for page := 1; ; page++ {
		result, err := source.FetchPage(ctx, page, pageSize)
		if err != nil {
			return written, fmt.Errorf("fetch page %d: %w", page, err)
		}

		batch := result.Employees
		if limit > 0 && written+len(batch) > limit {
			batch = batch[:limit-written]
		}
		n, err := repo.UpsertMany(ctx, batch)
		if err != nil {
			return written, err
		}
		written += n
		slog.Info("Page imported", "page", page, "count", n)

		if !result.HasMore || (limit > 0 && written >= limit) {
			return written, nil
		}
	}
}
