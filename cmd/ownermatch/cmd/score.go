package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openrolls/ownermatch/internal/config"
	"github.com/openrolls/ownermatch/pkg/convert"
	"github.com/openrolls/ownermatch/pkg/score"
)

// scoreCmd scores the first two records of a file against each other and
// prints the weighted-component breakdown.
var scoreCmd = &cobra.Command{
	Use:   "score <records.yaml>",
	Short: "Score two records against each other",
	Long: `Score reads the first two records from a YAML file and prints their
component similarities (name, contact, overall entity score). This is the
same breakdown the resolver uses for its merge decision.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	file, err := convert.LoadFile(args[0])
	if err != nil {
		return err
	}
	if len(file.Records) < 2 {
		return fmt.Errorf("need at least two records, got %d", len(file.Records))
	}

	locality, err := config.Locality()
	if err != nil {
		return err
	}
	scorer, err := score.New(score.WithLocality(locality))
	if err != nil {
		return err
	}

	a := file.Records[0].Entity()
	b := file.Records[1].Entity()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "records:  %s vs %s\n", file.Records[0].ExternalID, file.Records[1].ExternalID)
	if a.Name != nil && b.Name != nil {
		fmt.Fprintf(out, "name:     %.10f\n", scorer.Name(a.Name, b.Name))
	}
	if a.Contact != nil && b.Contact != nil {
		fmt.Fprintf(out, "contact:  %.10f\n", scorer.Contact(a.Contact, b.Contact))
	}
	entityScore := scorer.Entity(a, b)
	fmt.Fprintf(out, "entity:   %.10f\n", entityScore)
	fmt.Fprintf(out, "same owner at threshold %.2f: %v\n",
		config.SameOwnerThreshold(), entityScore >= config.SameOwnerThreshold())
	return nil
}
