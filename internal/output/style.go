package output

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// NotAvailable is rendered for absent and empty values.
const NotAvailable = "N/A"

const headerWidth = 40

type Style int

const (
	StyleSuccess Style = iota
	StyleWarning
	StyleFailure
)

func (s Style) String() string {
	switch s {
	case StyleWarning:
		return "warning"
	case StyleFailure:
		return "failure"
	default:
		return "success"
	}
}

var (
	successStyle = pterm.NewStyle(pterm.FgLightGreen)
	warningStyle = pterm.NewStyle(pterm.FgLightYellow)
	failureStyle = pterm.NewStyle(pterm.FgLightRed)
	nameStyle    = pterm.NewStyle(pterm.FgLightBlue)
	headerStyle  = pterm.NewStyle(pterm.FgLightMagenta, pterm.Bold)
)

func (s Style) Sprint(text string) string {
	switch s {
	case StyleWarning:
		return warningStyle.Sprint(text)
	case StyleFailure:
		return failureStyle.Sprint(text)
	default:
		return successStyle.Sprint(text)
	}
}

// Classify picks the style for a field value. Not-available and empty values
// warn, strings starting with "error" in any case fail, the rest succeed.
func Classify(value any) Style {
	if value == NotAvailable || isEmptyValue(value) {
		return StyleWarning
	}
	if text, ok := value.(string); ok && strings.HasPrefix(strings.ToLower(text), "error") {
		return StyleFailure
	}
	return StyleSuccess
}

func isEmptyValue(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case bool:
		return !typed
	case json.Number:
		f, err := typed.Float64()
		return err == nil && f == 0
	case float64:
		return typed == 0
	case int:
		return typed == 0
	case []any:
		return len(typed) == 0
	case map[string]any:
		return len(typed) == 0
	default:
		return false
	}
}

// FormatValue renders a document value as display text.
func FormatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return NotAvailable
	case string:
		return typed
	case json.Number:
		return typed.String()
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case []any, map[string]any:
		data, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprintf("%v", typed)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", typed)
	}
}

// FieldLine renders "name: value" with the value styled by Classify.
func FieldLine(name string, value any) string {
	return nameStyle.Sprint(name+": ") + Classify(value).Sprint(FormatValue(value))
}

// HeaderLines renders a section title between two delimiter rows.
func HeaderLines(title string) []string {
	rule := headerStyle.Sprint(strings.Repeat("=", headerWidth))
	return []string{rule, headerStyle.Sprint(title), rule}
}
