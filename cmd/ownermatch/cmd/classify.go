package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openrolls/ownermatch/pkg/convert"
	"github.com/openrolls/ownermatch/pkg/records"
	"github.com/openrolls/ownermatch/pkg/registry"
)

var classifyThreshold float64

// caseDescriptions gives each collision case a readable label.
var caseDescriptions = map[registry.Case]string{
	registry.CaseNoCollision:      "no collision",
	registry.CaseOneCollides:      "one side at a collision base",
	registry.CaseDifferentBases:   "collisions at different bases",
	registry.CaseExcluded:         "excluded, the shared identifier explains the pair",
	registry.CaseIgnoreIdentifier: "compare ignoring the identifier",
}

// classifyCmd reports the collision case for the first two records of a
// file, after resolving every record in the file into a fresh registry.
var classifyCmd = &cobra.Command{
	Use:   "classify <records.yaml>",
	Short: "Classify the collision case for a record pair",
	Long: `Classify reads records from a YAML file, resolves every record into a
fresh registry in file order, and reports the collision case for the first
two records' primary addresses, together with the component breakdown the
resolver uses for its merge decision.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().Float64Var(&classifyThreshold, "threshold", 0,
		"same-owner threshold override (0 uses configuration)")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	file, err := convert.LoadFile(args[0])
	if err != nil {
		return err
	}
	if len(file.Records) < 2 {
		return fmt.Errorf("need at least two records, got %d", len(file.Records))
	}

	resolver, reg, scorer, err := buildResolver(classifyThreshold)
	if err != nil {
		return err
	}

	entities := make([]*records.Entity, len(file.Records))
	for i, rec := range file.Records {
		entities[i] = rec.Entity()
		if _, err := resolver.Resolve(entities[i], rec.Location); err != nil {
			return fmt.Errorf("resolving record %s: %w", rec.ExternalID, err)
		}
	}

	a, b := entities[0], entities[1]
	var addrA, addrB *records.Address
	if a.Contact != nil {
		addrA = a.Contact.Primary
	}
	if b.Contact != nil {
		addrB = b.Contact.Primary
	}

	c := reg.Classify(addrA, addrB, a, b)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "records:  %s vs %s\n", file.Records[0].ExternalID, file.Records[1].ExternalID)
	fmt.Fprintf(out, "case:     %s (%s)\n", c, caseDescriptions[c])
	if a.Name != nil && b.Name != nil {
		fmt.Fprintf(out, "name:     %.10f\n", scorer.Name(a.Name, b.Name))
	}
	if addrA != nil && addrB != nil {
		fmt.Fprintf(out, "address:  %.10f\n", scorer.Address(addrA, addrB))
	}
	fmt.Fprintf(out, "entity:   %.10f\n", scorer.Entity(a, b))
	return nil
}
