package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wildfunctions/symdiff/pkg/engine"
	"github.com/wildfunctions/symdiff/pkg/pool"
)

type checkOptions struct {
	configPath string
	cfg        engine.Config
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{cfg: engine.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check symbolic derivatives of random trees against finite differences",
		Long: fmt.Sprintf(`Generate random trees from a pool, differentiate each one and compare
the symbolic derivative with a central finite difference at a random point.

Available pools: %v`, pool.Names()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			eng, err := engine.New(cfg, nil)
			if err != nil {
				return err
			}
			report, runErr := eng.Run(cmd.Context())

			out := cmd.OutOrStdout()
			switch cfg.Format {
			case "json":
				if err := engine.WriteJSON(out, report); err != nil {
					return err
				}
			default:
				engine.WriteText(out, report)
			}

			if runErr != nil {
				return errors.Wrap(runErr, "check interrupted")
			}
			if report.Failed > 0 {
				return errors.Errorf("%d of %d checks failed", report.Failed, len(report.Cases))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file; explicit flags override it")
	f.StringVarP(&opts.cfg.Pool, "pool", "p", opts.cfg.Pool, "tree pool")
	f.IntVarP(&opts.cfg.Trees, "trees", "t", opts.cfg.Trees, "number of trees to check")
	f.IntVar(&opts.cfg.MaxDepth, "depth", opts.cfg.MaxDepth, "maximum tree depth")
	f.StringVarP(&opts.cfg.Target, "target", "x", opts.cfg.Target, "variable to differentiate with respect to")
	f.Int64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "random seed (0 = random)")
	f.IntVarP(&opts.cfg.Workers, "workers", "w", opts.cfg.Workers, "number of parallel workers")
	f.Float64Var(&opts.cfg.Step, "step", opts.cfg.Step, "relative finite difference step")
	f.Float64Var(&opts.cfg.Tolerance, "tolerance", opts.cfg.Tolerance, "relative tolerance")
	f.StringVar(&opts.cfg.Format, "format", opts.cfg.Format, "report format: text or json")
	f.BoolVar(&opts.cfg.Verbose, "verbose", opts.cfg.Verbose, "list passing cases too")
	return cmd
}

// resolve loads the config file, if any, and applies the flags that were
// set explicitly on top of it.
func (o *checkOptions) resolve(cmd *cobra.Command) (engine.Config, error) {
	if o.configPath == "" {
		return o.cfg, nil
	}
	cfg, err := engine.LoadConfig(o.configPath)
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("pool") {
		cfg.Pool = o.cfg.Pool
	}
	if f.Changed("trees") {
		cfg.Trees = o.cfg.Trees
	}
	if f.Changed("depth") {
		cfg.MaxDepth = o.cfg.MaxDepth
	}
	if f.Changed("target") {
		cfg.Target = o.cfg.Target
	}
	if f.Changed("seed") {
		cfg.Seed = o.cfg.Seed
	}
	if f.Changed("workers") {
		cfg.Workers = o.cfg.Workers
	}
	if f.Changed("step") {
		cfg.Step = o.cfg.Step
	}
	if f.Changed("tolerance") {
		cfg.Tolerance = o.cfg.Tolerance
	}
	if f.Changed("format") {
		cfg.Format = o.cfg.Format
	}
	if f.Changed("verbose") {
		cfg.Verbose = o.cfg.Verbose
	}
	return cfg, nil
}
