package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/actsim/internal/acto"
	"github.com/san-kum/actsim/internal/analysis"
	"github.com/san-kum/actsim/internal/config"
	"github.com/san-kum/actsim/internal/metrics"
	"github.com/san-kum/actsim/internal/solver"
	"github.com/san-kum/actsim/internal/store"
	"github.com/san-kum/actsim/internal/tui"
)

var (
	dataDir string
	n       int
	tFinal  float64
	k       float64
	w       float64
	gamma   float64
	nList   []int
	// Config file
	configFile string
	// Preset name
	preset string
	// Convergence options
	parallel bool
	csvPath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "actsim",
		Short: "1-D actomyosin network solver",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".actsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one simulation to its final time",
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)

	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "grid-refinement convergence study",
		RunE:  runConvergence,
	}
	addParamFlags(convergeCmd)
	convergeCmd.Flags().IntSliceVar(&nList, "n-list", []int{20, 40, 60, 80, 100}, "grid sizes to test")
	convergeCmd.Flags().BoolVar(&parallel, "parallel", false, "run grid sizes concurrently")
	convergeCmd.Flags().StringVar(&csvPath, "csv", "", "export table to CSV file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tN\tT_FINAL\tK\tW\tGAMMA")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.4f\t%.2f\t%.2f\n",
					name, cfg.N, cfg.TFinal, cfg.K, cfg.W, cfg.Gamma)
			}
			return tw.Flush()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the final fields of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.New(dataDir)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			return store.ExportRunJSON(os.Stdout, meta)
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live field visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParams(cmd)
			if err != nil {
				return err
			}
			return tui.Run(p)
		},
	}
	addParamFlags(liveCmd)

	rootCmd.AddCommand(runCmd, convergeCmd, presetsCmd, listCmd, plotCmd, exportJSONCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&n, "n", config.DefaultN, "grid size")
	cmd.Flags().Float64Var(&tFinal, "time", config.DefaultTFinal, "final simulated time")
	cmd.Flags().Float64Var(&k, "k", config.DefaultK, "reaction rate")
	cmd.Flags().Float64Var(&w, "w", config.DefaultW, "activity relaxation rate")
	cmd.Flags().Float64Var(&gamma, "gamma", config.DefaultGamma, "coupling strength")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset parameter set")
}

// resolveParams layers preset, then config file, then explicit CLI
// flags, and returns the resulting parameter bundle.
func resolveParams(cmd *cobra.Command) (acto.Params, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return acto.Params{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return acto.Params{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if !cmd.Flags().Changed("n") {
		n = cfg.N
	}
	if !cmd.Flags().Changed("time") {
		tFinal = cfg.TFinal
	}
	if !cmd.Flags().Changed("k") {
		k = cfg.K
	}
	if !cmd.Flags().Changed("w") {
		w = cfg.W
	}
	if !cmd.Flags().Changed("gamma") {
		gamma = cfg.Gamma
	}
	if !cmd.Flags().Changed("n-list") && cmd.Flags().Lookup("n-list") != nil {
		nList = cfg.NList
	}

	return acto.Params{N: n, TFinal: tFinal, K: k, W: w, Gamma: gamma}, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	grid, err := acto.NewGrid(p.N)
	if err != nil {
		return err
	}

	sim := solver.New(p)
	sim.AddMetric(metrics.NewMass(grid))
	sim.AddMetric(metrics.NewMassDrift(grid))
	sim.AddMetric(metrics.NewBoundaryLeak(grid, p.Peclet()))

	fmt.Printf("running N=%d to t=%.2f (k=%.4f w=%.2f gamma=%.2f)...\n", p.N, p.TFinal, p.K, p.W, p.Gamma)
	start := time.Now()

	result, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(p, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d (dt=%.6f, Pe=%.2f)\n", result.Steps, result.Dt, result.Pe)
	fmt.Printf("mass: %.6f (initial %.6f)\n", result.Mass, result.InitialMass)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
}

func runConvergence(cmd *cobra.Command, args []string) error {
	if _, err := resolveParams(cmd); err != nil {
		return err
	}

	study := &analysis.Study{
		NList:    nList,
		TFinal:   tFinal,
		K:        k,
		W:        w,
		Gamma:    gamma,
		Parallel: parallel,
	}

	fmt.Printf("convergence study over N=%v (k=%.4f w=%.2f gamma=%.2f)...\n", nList, k, w, gamma)
	start := time.Now()

	table, err := study.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "N\tL2_RHO\tL2_A\tL2_V\tMASS")
	for _, row := range table {
		fmt.Fprintf(tw, "%d\t%.6e\t%.6e\t%.6e\t%.8f\n",
			row.N, row.L2Rho, row.L2A, row.L2V, row.Mass)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	orders := analysis.FittedOrders(table)
	fmt.Println("\nobserved order (log-log slope):")
	printOrder := func(name string, v float64) {
		if math.IsNaN(v) {
			fmt.Printf("  %s: n/a\n", name)
			return
		}
		fmt.Printf("  %s: %.3f\n", name, v)
	}
	printOrder("rho", orders.Rho)
	printOrder("a", orders.A)
	printOrder("V", orders.V)

	if csvPath != "" {
		if err := store.ExportTableCSV(csvPath, table); err != nil {
			return err
		}
		fmt.Printf("\ntable written to %s\n", csvPath)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tN\tT_FINAL\tK\tW\tGAMMA\tMASS")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\t%.4f\t%.2f\t%.2f\t%.6f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.N,
			run.TFinal,
			run.K,
			run.W,
			run.Gamma,
			run.Mass,
		)
	}

	return tw.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	x, rho, a, v, err := st.LoadFields(runID)
	if err != nil {
		return err
	}
	if len(x) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("N=%d t_final=%.2f k=%.4f w=%.2f gamma=%.2f\n\n", meta.N, meta.TFinal, meta.K, meta.W, meta.Gamma)

	fields := []struct {
		name string
		data acto.Field
	}{
		{"rho (density)", rho},
		{"a (activity)", a},
		{"V (velocity)", v},
	}

	for _, f := range fields {
		graph := asciigraph.Plot(f.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(f.name+" at final time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}
