package main

//
//  @title           nbpstat API
//  @version         1.0
//  @description     Aggregates NBP exchange-rate and gold-price series over arbitrary date ranges.
//  @termsOfService  https://github.com/guttosm/nbpstat
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/nbpstat
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        orders
//  @tag.description Run NBP exchange-rate and gold-price orders
//
//  @tag.name        runs
//  @tag.description Journal of executed orders
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/guttosm/nbpstat/config"
	_ "github.com/guttosm/nbpstat/docs" // swagger docs
	"github.com/guttosm/nbpstat/internal/app"
	"github.com/guttosm/nbpstat/internal/logger"
	"github.com/guttosm/nbpstat/internal/domain/models"
	"github.com/guttosm/nbpstat/internal/orders"
	"github.com/guttosm/nbpstat/internal/storage"
)

// orderFlag binds one order kind to its command line flag.
type orderFlag struct {
	kind  orders.Kind
	short string
	usage string
	// bare is the value used when the flag is given without an argument;
	// empty means an argument is required.
	bare string
}

var orderFlags = []orderFlag{
	{kind: orders.KindDatePrice, short: "c", usage: "price of a currency and of gold on a day: `currency[,yyyy-MM-dd]`"},
	{kind: orders.KindGoldAverage, short: "a", usage: "average price of gold over a period: `start[,end]`"},
	{kind: orders.KindHighestAmplitude, short: "h", usage: "table A currency whose rate moved the most since a day: `yyyy-MM-dd`"},
	// a bare -l means the last business day
	{kind: orders.KindLowestPrice, short: "l", usage: "table C currency with the lowest bid price on a day: `[yyyy-MM-dd]`", bare: " "},
	{kind: orders.KindSortByDifference, short: "s", usage: "first N table C currencies by ask-bid difference: `N[,yyyy-MM-dd]`"},
	{kind: orders.KindLowestHighest, short: "w", usage: "lowest and highest rate of a currency since 2002: `currency`"},
	{kind: orders.KindWeekGraph, short: "p", usage: "week-based histogram of a currency: `currency;yyyy,MM,W;yyyy,MM,W`"},
}

// flagOrder is one occurrence of an order flag on the command line.
type flagOrder struct {
	kind orders.Kind
	raw  string
}

// orderValue is the pflag.Value behind an order flag. Every Set records the
// occurrence, so the batch follows the order the flags were typed in and a
// repeated flag runs again.
type orderValue struct {
	kind  orders.Kind
	raw   string
	typed *[]flagOrder
}

func (v *orderValue) String() string { return v.raw }
func (v *orderValue) Type() string   { return "string" }

func (v *orderValue) Set(s string) error {
	v.raw = s
	*v.typed = append(*v.typed, flagOrder{kind: v.kind, raw: s})
	return nil
}

// cli carries state shared by the root command and its subcommands.
type cli struct {
	v     *viper.Viper
	cfg   config.Config
	out   io.Writer
	typed []flagOrder
}

// newRootCmd builds the nbpstat command tree writing results to out.
func newRootCmd(out io.Writer) *cobra.Command {
	return newCLI(out).rootCmd()
}

func newCLI(out io.Writer) *cli {
	return &cli{v: viper.New(), out: out}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nbpstat",
		Short: "Exchange-rate and gold-price statistics from the NBP web API",
		Long: `nbpstat queries the National Bank of Poland web API and prints
aggregated statistics. Every order flag may be combined with the others
and repeated; the orders run one after another in the order they were given.`,
		Example: `  nbpstat -c usd,2017-11-10
  nbpstat -a 2016-01-04,2017-06-30 -s 5
  nbpstat -p "usd;2017,10,1;2017,11,2"`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE:              c.runBatch,
	}
	root.SetOut(c.out)

	flags := root.Flags()
	// -h belongs to highest-amplitude, so help gets no shorthand
	flags.Bool("help", false, "help for nbpstat")
	for _, f := range orderFlags {
		flags.VarP(&orderValue{kind: f.kind, typed: &c.typed}, f.kind.String(), f.short, f.usage)
		if f.bare != "" {
			flags.Lookup(f.kind.String()).NoOptDefVal = f.bare
		}
	}

	pf := root.PersistentFlags()
	pf.Bool("journal", false, "record every executed order in PostgreSQL (JOURNAL_ENABLED)")
	pf.Float64("rate-limit", 5, "max requests per second sent to the NBP API, 0 disables (NBP_RATE_LIMIT)")
	_ = c.v.BindPFlag("JOURNAL_ENABLED", pf.Lookup("journal"))
	_ = c.v.BindPFlag("NBP_RATE_LIMIT", pf.Lookup("rate-limit"))

	root.AddCommand(c.serveCmd(), c.runsCmd())
	return root
}

func (c *cli) setup(_ *cobra.Command, _ []string) error {
	logger.Init()
	cfg, err := config.Load(c.v)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// collectOrders builds one order per order flag occurrence, in the order
// they were typed.
func collectOrders(typed []flagOrder, env orders.Env) ([]orders.Order, error) {
	batch := make([]orders.Order, 0, len(typed))
	for _, f := range typed {
		o, err := orders.New(f.kind, f.kind.SplitArgs(f.raw), env)
		if err != nil {
			return nil, err
		}
		batch = append(batch, o)
	}
	return batch, nil
}

func (c *cli) runBatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	batch, err := collectOrders(c.typed, app.NewEnv(c.cfg))
	if err != nil {
		return err
	}
	if len(batch) == 0 {
		return cmd.Help()
	}

	journal, cleanup, err := app.OpenJournal(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	outcomes := orders.NewPerformer(c.out).Perform(ctx, batch)
	if journal != nil {
		flushJournal(ctx, journal, outcomes)
	}
	return nil
}

// flushJournal stores the whole batch in one transaction. A journal
// failure never changes the exit status.
func flushJournal(ctx context.Context, j storage.RunsRepository, outcomes []orders.Outcome) {
	runs := make([]models.OrderRun, 0, len(outcomes))
	for _, oc := range outcomes {
		runs = append(runs, oc.Run)
	}
	if err := j.InsertRuns(ctx, runs); err != nil {
		logger.L().Error().Err(err).Int("runs", len(runs)).Msg("journal flush failed")
		return
	}
	logger.L().Debug().Int("runs", len(runs)).Msg("journal flushed")
}

// main is the entry point of the nbpstat application.
//
// Modes:
//   - nbpstat [order flags]: runs the selected orders and prints their reports.
//   - nbpstat serve:         starts the REST API.
//   - nbpstat runs:          lists the journal of executed orders.
func main() {
	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
