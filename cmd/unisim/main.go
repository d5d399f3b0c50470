package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/napolitain/unisim/internal/journal"
	"github.com/napolitain/unisim/internal/loader"
	"github.com/napolitain/unisim/internal/metrics"
	"github.com/napolitain/unisim/internal/models"
	"github.com/napolitain/unisim/internal/report"
	"github.com/napolitain/unisim/internal/rng"
	"github.com/napolitain/unisim/internal/simulation"
	"github.com/napolitain/unisim/internal/university"
)

var configFile string

func main() {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "unisim [staff file] [funding] [years]",
		Short: "University resource allocation simulation",
		Long: `Simulates the yearly operation of a university: building and
upgrading facilities, hiring staff, instructing students and paying costs
under a hard budget constraint.`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyPositional(v, args); err != nil {
				return err
			}
			return run(cmd.Context(), v)
		},
	}

	registerFlags(rootCmd.Flags(), v)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.Red("Error: %v", err)
		stop()
		os.Exit(1)
	}
}

// registerFlags defines every flag on flags and binds it to its config key
func registerFlags(flags *pflag.FlagSet, v *viper.Viper) {
	flags.StringP("staff", "s", "", "Path to the staff candidate file")
	flags.Float64P("funding", "f", 1000, "Starting funding")
	flags.IntP("years", "y", 10, "Number of years to simulate")
	flags.Int64("seed", 0, "Random seed (0 = time based)")
	flags.Duration("delay", 500*time.Millisecond, "Pause between years")
	flags.Bool("interactive", true, "Ask to continue after the last year")
	flags.BoolP("quiet", "q", false, "Only print year summaries")
	flags.String("journal", "", "Record the run in a SQLite journal at this path")
	flags.String("report", "", "Write a YAML report of the run to this path")
	flags.String("metrics", "", "Write Prometheus textfile metrics to this path")
	flags.BoolP("verbose", "v", false, "Debug logging on stderr")
	flags.StringVarP(&configFile, "config", "c", "", "Path to YAML config file")

	for key, flag := range map[string]string{
		loader.KeyStaffFile:   "staff",
		loader.KeyFunding:     "funding",
		loader.KeyYears:       "years",
		loader.KeySeed:        "seed",
		loader.KeyDelay:       "delay",
		loader.KeyInteractive: "interactive",
		loader.KeyQuiet:       "quiet",
		loader.KeyJournal:     "journal",
		loader.KeyReport:      "report",
		loader.KeyMetrics:     "metrics",
		loader.KeyVerbose:     "verbose",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
}

// applyPositional accepts "unisim <staff file> <funding> <years>"
func applyPositional(v *viper.Viper, args []string) error {
	if len(args) > 0 {
		v.Set(loader.KeyStaffFile, args[0])
	}
	if len(args) > 1 {
		funding, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("%w: funding %q is not a number", loader.ErrInvalidConfig, args[1])
		}
		v.Set(loader.KeyFunding, funding)
	}
	if len(args) > 2 {
		years, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("%w: years %q is not an integer", loader.ErrInvalidConfig, args[2])
		}
		v.Set(loader.KeyYears, years)
	}
	return nil
}

func run(ctx context.Context, v *viper.Viper) error {
	cfg, err := loader.LoadConfig(v, configFile)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	pool, err := loader.LoadStaff(cfg.StaffFile)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := newPrinter(os.Stdout, cfg.Quiet)
	sinks := []models.EventSink{out}
	observers := []simulation.Observer{out.observeYear}

	var runID string
	if cfg.Journal != "" {
		j, err := journal.Open(cfg.Journal)
		if err != nil {
			return err
		}
		defer j.Close()
		runID, err = j.BeginRun(ctx, journal.RunMeta{
			Seed:      seed,
			Funding:   cfg.Funding,
			Years:     cfg.Years,
			StaffFile: cfg.StaffFile,
		})
		if err != nil {
			return err
		}
		sinks = append(sinks, j)
		observers = append(observers, j.RecordYear)
	}

	var recorder *metrics.Recorder
	if cfg.Metrics != "" {
		recorder = metrics.NewRecorder()
		sinks = append(sinks, recorder)
		observers = append(observers, recorder.ObserveYear)
	}

	uni := university.New(cfg.Funding,
		university.WithRand(rng.New(seed)),
		university.WithEventSink(models.MultiSink(sinks...)),
		university.WithLogger(logger),
	)

	opts := []simulation.Option{
		simulation.WithDelay(cfg.Delay),
		simulation.WithLogger(logger),
	}
	for _, o := range observers {
		opts = append(opts, simulation.WithObserver(o))
	}
	if cfg.Interactive {
		opts = append(opts, simulation.WithContinuer(newPrompt(os.Stdin, os.Stdout)))
	}
	driver := simulation.New(uni, pool, opts...)

	if !cfg.Quiet {
		printBanner(os.Stdout)
	}
	out.banner.Printf("Simulation starting for %d years: Budget: %s Reputation: %d Students: %d\n\n",
		cfg.Years, coins(uni.Budget()), uni.Reputation(), uni.NumberOfStudents())
	logger.Debug("simulation configured", "seed", seed, "candidates", len(pool), "run", runID)

	runErr := driver.Run(ctx, cfg.Years)

	summaries := driver.Summaries()
	if len(summaries) > 0 {
		out.banner.Printf("Simulation complete for %d years: Budget: %s Reputation: %d Students: %d\n\n",
			len(summaries), coins(uni.Budget()), uni.Reputation(), uni.NumberOfStudents())
		printSummaryTable(summaries)
	}

	if cfg.Report != "" && len(summaries) > 0 {
		if err := report.Write(cfg.Report, report.New(runID, seed, cfg.Funding, summaries)); err != nil {
			return err
		}
		color.Green("Report written to %s", cfg.Report)
	}
	if recorder != nil {
		if err := recorder.WriteTextfile(cfg.Metrics); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return runErr
}
