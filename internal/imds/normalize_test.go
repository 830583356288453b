package imds

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func decode(t *testing.T, raw string) Document {
	t.Helper()
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return doc
}

func TestNormalizeReplacesEmptyStrings(t *testing.T) {
	doc := decode(t, `{
		"compute": {"vmId": "", "name": "vm1", "tagsList": ["", "a"], "osProfile": {"computerName": ""}},
		"network": {"interface": [{"macAddress": "", "ipv4": {"ipAddress": [{"publicIpAddress": ""}]}}]}
	}`)

	got := NormalizeDocument(doc)
	want := decode(t, `{
		"compute": {"vmId": "N/A", "name": "vm1", "tagsList": ["N/A", "a"], "osProfile": {"computerName": "N/A"}},
		"network": {"interface": [{"macAddress": "N/A", "ipv4": {"ipAddress": [{"publicIpAddress": "N/A"}]}}]}
	}`)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeLeavesOtherLeavesUnchanged(t *testing.T) {
	doc := Document{
		"flag":   false,
		"zero":   json.Number("0"),
		"nil":    nil,
		"spaces": " ",
		"empty":  []any{},
		"obj":    map[string]any{},
	}

	got := NormalizeDocument(doc)
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("unexpected change (-want +got):\n%s", diff)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	doc := decode(t, `{"compute": {"a": "", "b": [{"c": ""}, "", "x"], "d": {"e": {"f": ""}}}}`)

	once := NormalizeDocument(doc)
	twice := NormalizeDocument(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("normalize is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	doc := decode(t, `{"compute": {"vmId": ""}}`)
	_ = NormalizeDocument(doc)

	if doc["compute"].(map[string]any)["vmId"] != "" {
		t.Fatalf("input document was mutated")
	}
}

func TestNormalizeScalar(t *testing.T) {
	if got := Normalize(""); got != Sentinel {
		t.Fatalf("expected sentinel, got %v", got)
	}
	if got := Normalize("value"); got != "value" {
		t.Fatalf("expected value unchanged, got %v", got)
	}
	if got := NormalizeDocument(nil); len(got) != 0 {
		t.Fatalf("expected empty document, got %v", got)
	}
}
