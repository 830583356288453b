package report

import (
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/samatild/azvmprofilefetcher/internal/imds"
	"github.com/samatild/azvmprofilefetcher/internal/output"
	"github.com/samatild/azvmprofilefetcher/internal/types"
)

var computeFields = []string{
	"vmScaleSetName",
	"virtualMachineScaleSet",
	"zone",
	"platformFaultDomain",
	"platformUpdateDomain",
	"placementGroupId",
	"plan",
	"securityProfile",
	"publicKeys",
}

// fieldFormatter expands one compute field into report lines.
type fieldFormatter func(name string, value any) []string

// computeFormatters holds the composite compute fields; anything else is a scalar.
var computeFormatters = map[string]fieldFormatter{
	"publicKeys":             formatPublicKeys,
	"securityProfile":        formatSubMap,
	"plan":                   formatSubMap,
	"virtualMachineScaleSet": formatIdentifier,
}

func computeLines(doc imds.Document) []string {
	var lines []string
	for _, field := range computeFields {
		lines = append(lines, formatField(field, doc.Value("compute."+field))...)
	}
	return lines
}

func formatField(name string, value any) []string {
	if format, ok := computeFormatters[name]; ok {
		return format(name, value)
	}
	return formatScalar(name, value)
}

func formatScalar(name string, value any) []string {
	return []string{output.FieldLine(name, value)}
}

func formatPublicKeys(name string, value any) []string {
	items, ok := value.([]any)
	if !ok || len(items) == 0 {
		return formatScalar(name, imds.Sentinel)
	}
	keys := types.ParsePublicKeys(items)
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, output.FieldLine(output.FormatValue(key.Path), key.KeyData))
	}
	return lines
}

func formatSubMap(name string, value any) []string {
	raw, ok := value.(map[string]any)
	if !ok {
		return formatScalar(name, value)
	}
	if len(raw) == 0 {
		return formatScalar(name, imds.Sentinel)
	}
	lines := make([]string, 0, len(raw))
	for _, key := range sortedKeys(raw) {
		lines = append(lines, output.FieldLine(name+"."+key, imds.FieldOf(raw, key)))
	}
	return lines
}

func formatIdentifier(name string, value any) []string {
	raw, ok := value.(map[string]any)
	if !ok {
		return formatScalar(name, value)
	}
	return formatScalar(name, imds.ValueOf(raw, "id"))
}

func sortedKeys(raw map[string]any, exclude ...string) []string {
	keys := sets.KeySet(raw)
	keys.Delete(exclude...)
	return sets.List(keys)
}
