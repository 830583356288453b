// Package report renders a normalized instance metadata document as a
// sectioned, human-readable report.
package report

import (
	"github.com/samatild/azvmprofilefetcher/internal/imds"
	"github.com/samatild/azvmprofilefetcher/internal/output"
)

type section struct {
	title string
	// gate names a key under compute that must exist for the section to render.
	gate  string
	lines func(doc imds.Document) []string
}

var sections = []section{
	{title: "VM Details", lines: detailsLines},
	{title: "VM Plan", gate: "plan", lines: mapFieldLines("compute.plan", "name", "publisher", "product")},
	{title: "Extended Location", gate: "extendedLocation", lines: mapFieldLines("compute.extendedLocation", "name", "type")},
	{title: "Host Group", gate: "hostGroup", lines: mapFieldLines("compute.hostGroup", "id")},
	{title: "Host", gate: "host", lines: mapFieldLines("compute.host", "id")},
	{title: "Additional Capabilities", gate: "additionalCapabilities", lines: allKeysLines("compute.additionalCapabilities")},
	{title: "OS Profile", lines: allKeysLines("compute.osProfile")},
	{title: "Image Reference", lines: allKeysLines("compute.storageProfile.imageReference", "id")},
	{title: "VM Compute", lines: computeLines},
	{title: "VM Storage", lines: storageLines},
	{title: "VM Network", lines: networkLines},
}

var detailsFields = []string{
	"vmId",
	"subscriptionId",
	"resourceGroupName",
	"name",
	"vmSize",
	"location",
	"osType",
	"azEnvironment",
	"provider",
	"resourceId",
	"licenseType",
	"priority",
	"evictionPolicy",
	"tags",
}

// Render writes every applicable section of doc to sink. Missing fields are
// rendered as not available; only a failing sink produces an error.
func Render(doc imds.Document, sink output.Sink) error {
	if doc == nil {
		doc = imds.Document{}
	}
	for _, sec := range sections {
		if sec.gate != "" && !doc.Has("compute."+sec.gate) {
			continue
		}
		for _, line := range output.HeaderLines(sec.title) {
			if err := sink.WriteLine(line); err != nil {
				return err
			}
		}
		for _, line := range sec.lines(doc) {
			if err := sink.WriteLine(line); err != nil {
				return err
			}
		}
	}
	return nil
}

// Titles lists the section titles doc would produce, in order.
func Titles(doc imds.Document) []string {
	var titles []string
	for _, sec := range sections {
		if sec.gate != "" && !doc.Has("compute."+sec.gate) {
			continue
		}
		titles = append(titles, sec.title)
	}
	return titles
}

func detailsLines(doc imds.Document) []string {
	lines := make([]string, 0, len(detailsFields))
	for _, field := range detailsFields {
		lines = append(lines, output.FieldLine(field, doc.Value("compute."+field)))
	}
	return lines
}

func mapFieldLines(path string, fields ...string) func(imds.Document) []string {
	return func(doc imds.Document) []string {
		raw := doc.Map(path)
		lines := make([]string, 0, len(fields))
		for _, field := range fields {
			lines = append(lines, output.FieldLine(field, imds.ValueOf(raw, field)))
		}
		return lines
	}
}

func allKeysLines(path string, exclude ...string) func(imds.Document) []string {
	return func(doc imds.Document) []string {
		raw := doc.Map(path)
		var lines []string
		for _, key := range sortedKeys(raw, exclude...) {
			lines = append(lines, output.FieldLine(key, imds.FieldOf(raw, key)))
		}
		return lines
	}
}
