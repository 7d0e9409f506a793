// Package repair provides [jsonrecover.Repairer] implementations backed by
// general-purpose JSON repair libraries. They rewrite text aggressively
// (quoting keys, dropping trailing commas, closing strings) and are meant to
// be enabled explicitly with [jsonrecover.WithRepair].
package repair

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/jsonrecover"
	alexandre "github.com/RealAlexandreAI/json-repair"
	kaptinlin "github.com/kaptinlin/jsonrepair"
)

const (
	// NameAlexandre selects [Alexandre].
	NameAlexandre = "alexandre"

	// NameKaptinlin selects [Kaptinlin].
	NameKaptinlin = "kaptinlin"
)

var repairers = map[string]jsonrecover.Repairer{
	NameAlexandre: Alexandre,
	NameKaptinlin: Kaptinlin,
}

// Alexandre repairs text with github.com/RealAlexandreAI/json-repair.
func Alexandre(text string) (string, error) {
	repaired, err := alexandre.RepairJSON(text)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// Kaptinlin repairs text with github.com/kaptinlin/jsonrepair.
func Kaptinlin(text string) (string, error) {
	repaired, err := kaptinlin.JSONRepair(text)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// Lookup returns the repairer registered under name.
func Lookup(name string) (jsonrecover.Repairer, error) {
	r, ok := repairers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown repairer %q, expected one of: %s", name, strings.Join(Names(), ", "))
	}
	return r, nil
}

// Names returns the registered repairer names, sorted.
func Names() []string {
	names := make([]string, 0, len(repairers))
	for name := range repairers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
