package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeReport Mode = "report"
	ModeJSON   Mode = "json"
	ModeYAML   Mode = "yaml"
)

func ParseMode(raw string) (Mode, error) {
	switch raw {
	case "", string(ModeReport):
		return ModeReport, nil
	case string(ModeJSON):
		return ModeJSON, nil
	case string(ModeYAML):
		return ModeYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %s", raw)
	}
}

func EmitJSON(sink Sink, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return writeLines(sink, string(data))
}

func EmitYAML(sink Sink, value any) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return writeLines(sink, strings.TrimRight(buf.String(), "\n"))
}

func writeLines(sink Sink, text string) error {
	for _, line := range strings.Split(text, "\n") {
		if err := sink.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}
