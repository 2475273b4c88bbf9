package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openrolls/ownermatch/internal/config"
	"github.com/openrolls/ownermatch/pkg/convert"
	"github.com/openrolls/ownermatch/pkg/registry"
	"github.com/openrolls/ownermatch/pkg/score"
)

var (
	resolveThreshold float64
	snapshotPath     string
)

// resolveCmd runs collision resolution over a record file.
var resolveCmd = &cobra.Command{
	Use:   "resolve <records.yaml>",
	Short: "Resolve location-identifier collisions in a record file",
	Long: `Resolve reads already-structured records from a YAML file, registers each
one at its location identifier in file order, and reports per record
whether it was registered, merged into an existing owner, or forked onto
a fresh suffix.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().Float64Var(&resolveThreshold, "threshold", 0,
		"same-owner threshold override (0 uses configuration)")
	resolveCmd.Flags().StringVar(&snapshotPath, "snapshot", "",
		"write the final registry snapshot to this file ('-' for stdout)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	file, err := convert.LoadFile(args[0])
	if err != nil {
		return err
	}

	resolver, reg, _, err := buildResolver(resolveThreshold)
	if err != nil {
		return err
	}

	for _, rec := range file.Records {
		entity := rec.Entity()
		res, err := resolver.Resolve(entity, rec.Location)
		if err != nil {
			return fmt.Errorf("resolving record %s: %w", rec.ExternalID, err)
		}

		switch res.Outcome {
		case registry.OutcomeMerged:
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-20s -> merged into %s (score %.4f)\n",
				rec.ExternalID, res.Location, res.MergedID, res.Score)
		case registry.OutcomeNoIdentifier:
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-20s -> no identifier\n", rec.ExternalID, "")
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-20s -> %s\n",
				rec.ExternalID, res.Location, res.Outcome)
		}
	}

	if snapshotPath != "" {
		return writeSnapshot(reg)
	}
	return nil
}

// buildResolver wires a scorer, registry, and resolver from configuration.
// A zero threshold defers to configuration.
func buildResolver(threshold float64) (*registry.Resolver, *registry.Registry, score.Scorer, error) {
	locality, err := config.Locality()
	if err != nil {
		return nil, nil, nil, err
	}

	scorer, err := score.New(score.WithLocality(locality))
	if err != nil {
		return nil, nil, nil, err
	}

	if threshold == 0 {
		threshold = config.SameOwnerThreshold()
	}

	reg := registry.New()
	resolver, err := registry.NewResolver(reg, scorer, registry.WithThreshold(threshold))
	if err != nil {
		return nil, nil, nil, err
	}
	return resolver, reg, scorer, nil
}

// writeSnapshot renders the registry snapshot as YAML.
func writeSnapshot(reg *registry.Registry) error {
	data, err := reg.Snapshot().YAML()
	if err != nil {
		return err
	}
	if snapshotPath == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(snapshotPath, data, 0o644)
}
