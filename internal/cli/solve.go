package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/distcache"
	"github.com/katalvlaran/antcolony/geo"
	"github.com/katalvlaran/antcolony/internal/config"
	"github.com/katalvlaran/antcolony/render"
)

// solveOpts holds the flags of the solve command. Colony flags override the
// problem file only when given explicitly.
type solveOpts struct {
	colony     config.Colony
	start      string
	cache      cacheFlags
	dotPath    string
	svgPath    string
	jsonOutput bool
	dumpPher   bool
}

func newSolveCmd() *cobra.Command {
	var opts solveOpts
	def := config.Default().Colony

	cmd := &cobra.Command{
		Use:   "solve [problem.toml]",
		Short: "Find a short tour through the nodes of a problem file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.colony.Ants, "ants", def.Ants, "ants per iteration")
	f.Float64Var(&opts.colony.Alpha, "alpha", def.Alpha, "pheromone exponent")
	f.Float64Var(&opts.colony.Beta, "beta", def.Beta, "inverse-distance exponent")
	f.Float64Var(&opts.colony.Evaporation, "evaporation", def.Evaporation, "pheromone evaporation coefficient in [0,1]")
	f.Float64Var(&opts.colony.Deposit, "deposit", def.Deposit, "pheromone deposit constant")
	f.IntVar(&opts.colony.Iterations, "iterations", def.Iterations, "colony iterations")
	f.Int64Var(&opts.colony.Seed, "seed", def.Seed, "random seed (0 = fixed default)")
	f.IntVar(&opts.colony.Workers, "workers", def.Workers, "concurrent ants (0 = GOMAXPROCS)")
	f.StringVar(&opts.colony.ZeroPolicy, "zero-policy", def.ZeroPolicy, `all-zero attractiveness: "fail" or "uniform"`)
	f.StringVar(&opts.start, "start", "", "start label (default: first node)")
	f.StringVar(&opts.dotPath, "dot", "", "write the tour as Graphviz DOT to this path")
	f.StringVar(&opts.svgPath, "svg", "", "write the tour as SVG to this path")
	f.BoolVar(&opts.jsonOutput, "json", false, "print the result as JSON")
	f.BoolVar(&opts.dumpPher, "dump-pheromones", false, "print the final pheromone table")
	opts.cache.register(f)

	return cmd
}

// applyFlags copies explicitly set colony flags over the file values.
func applyFlags(fs *pflag.FlagSet, file *config.File, opts solveOpts) {
	overrides := map[string]func(){
		"ants":        func() { file.Colony.Ants = opts.colony.Ants },
		"alpha":       func() { file.Colony.Alpha = opts.colony.Alpha },
		"beta":        func() { file.Colony.Beta = opts.colony.Beta },
		"evaporation": func() { file.Colony.Evaporation = opts.colony.Evaporation },
		"deposit":     func() { file.Colony.Deposit = opts.colony.Deposit },
		"iterations":  func() { file.Colony.Iterations = opts.colony.Iterations },
		"seed":        func() { file.Colony.Seed = opts.colony.Seed },
		"workers":     func() { file.Colony.Workers = opts.colony.Workers },
		"zero-policy": func() { file.Colony.ZeroPolicy = opts.colony.ZeroPolicy },
		"start":       func() { file.Start = opts.start },
	}
	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply()
		}
	})
}

type solveOutput struct {
	Tour          []string `json:"tour"`
	Length        float64  `json:"length"`
	Found         bool     `json:"found"`
	Iterations    int      `json:"iterations"`
	BestIteration int      `json:"best_iteration"`
}

func runSolve(cmd *cobra.Command, path string, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	file, err := config.Load(path)
	if err != nil {
		return err
	}
	applyFlags(cmd.Flags(), &file, opts)

	options, err := file.Options()
	if err != nil {
		return err
	}
	prob, err := file.Problem()
	if err != nil {
		return err
	}

	store, err := opts.cache.open(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	oracle, err := distcache.NewOracle(store, prob.Distance, geo.Point.Key,
		distcache.WithNamespace("haversine"), distcache.WithLogger(logger))
	if err != nil {
		return err
	}
	prob.Distance = oracle.Func(ctx)
	options.Logger = logger

	prog := newProgress(logger)
	colony, err := aco.New(prob, options)
	if err != nil {
		return err
	}
	res, err := colony.Run()
	if err != nil {
		return err
	}
	hits, misses, _ := oracle.Stats()
	prog.done(fmt.Sprintf("Solved %d nodes", colony.Len()))
	logger.Debug("distance cache", "backend", opts.cache.backend, "hits", hits, "misses", misses)

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(solveOutput{
			Tour:          res.Tour,
			Length:        res.Length,
			Found:         res.Found,
			Iterations:    res.Iterations,
			BestIteration: res.BestIteration,
		})
	}

	out := printer{w: cmd.OutOrStdout()}
	if !res.Found {
		out.failure("No tour after %d iterations", res.Iterations)
		return nil
	}
	out.success("Best tour over %s nodes", StyleNumber.Render(strconv.Itoa(colony.Len())))
	out.tour(res.Tour, 6)
	out.keyValue("length", StyleNumber.Render(strconv.FormatFloat(res.Length, 'f', 1, 64))+" km")
	out.keyValue("found at", fmt.Sprintf("iteration %d of %d", res.BestIteration+1, res.Iterations))
	if opts.dumpPher {
		if err := dumpPheromones(cmd.OutOrStdout(), colony); err != nil {
			return err
		}
	}

	return writeDiagrams(ctx, out, colony, res, opts)
}

func writeDiagrams(ctx context.Context, out printer, colony *aco.Colony[string, geo.Point], res aco.Result[string], opts solveOpts) error {
	if opts.dotPath == "" && opts.svgPath == "" {
		return nil
	}
	p, err := render.FromColony(colony, res)
	if err != nil {
		return err
	}
	dot := render.ToDOT(p, render.DefaultOptions())

	if opts.dotPath != "" {
		if err := os.WriteFile(opts.dotPath, []byte(dot), 0o644); err != nil {
			return err
		}
		out.file(opts.dotPath)
	}
	if opts.svgPath != "" {
		svg, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.svgPath, svg, 0o644); err != nil {
			return err
		}
		out.file(opts.svgPath)
	}

	return nil
}

// dumpPheromones prints a snapshot of τ as a table labelled on both axes.
func dumpPheromones(w io.Writer, colony *aco.Colony[string, geo.Point]) error {
	labels := make([]string, colony.Len())
	for i := range labels {
		l, err := colony.Label(i)
		if err != nil {
			return err
		}
		labels[i] = l
	}

	rows := make([][]string, len(labels))
	colony.Pheromones().Do(func(i, j int, v float64) bool {
		if j == 0 {
			rows[i] = append(make([]string, 0, len(labels)+1), labels[i])
		}
		rows[i] = append(rows[i], strconv.FormatFloat(v, 'f', 3, 64))
		return true
	})

	headerStyle := StyleTitle.Padding(0, 1)
	labelStyle := StyleValue.Padding(0, 1)
	cellStyle := StyleNumber.Padding(0, 1).Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers(append([]string{"τ"}, labels...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return labelStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
