package registry

import (
	"sort"

	"github.com/agentstation/utc"
	"github.com/goccy/go-yaml"
)

// Snapshot is a serializable view of a Registry at a point in time.
// Persistence is external to this core; the snapshot is what gets handed to
// the external store, keyed by location identifier and external record id.
type Snapshot struct {
	CreatedAt utc.Time       `yaml:"created_at"`
	Bases     []BaseSnapshot `yaml:"bases"`
}

// BaseSnapshot is the snapshot of one base identifier's occupants.
type BaseSnapshot struct {
	Base int           `yaml:"base"`
	Rows []RowSnapshot `yaml:"rows"`
}

// RowSnapshot is the snapshot of one registry row.
type RowSnapshot struct {
	Identifier string   `yaml:"identifier"`
	ExternalID string   `yaml:"external_id"`
	Owner      string   `yaml:"owner,omitempty"`
	Absorbed   []string `yaml:"absorbed,omitempty"`
}

// Snapshot captures the registry's current state. Bases are sorted and
// absorbed ids listed deterministically.
func (r *Registry) Snapshot() *Snapshot {
	snap := &Snapshot{CreatedAt: utc.Now()}

	for _, base := range r.Bases() {
		bs := BaseSnapshot{Base: base}
		for _, row := range r.Rows(base) {
			rs := RowSnapshot{
				Identifier: row.Identifier(base).String(),
				ExternalID: row.Entity.ExternalID,
			}
			if row.Entity.Name != nil && row.Entity.Name.Full != nil {
				rs.Owner = row.Entity.Name.Full.String()
			}
			for id := range row.Entity.Subdivisions {
				rs.Absorbed = append(rs.Absorbed, id)
			}
			sort.Strings(rs.Absorbed)
			bs.Rows = append(bs.Rows, rs)
		}
		snap.Bases = append(snap.Bases, bs)
	}

	return snap
}

// YAML renders the snapshot as YAML.
func (s *Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
