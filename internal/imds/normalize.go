package imds

// Normalize returns a copy of value in which every empty string, at any depth,
// is replaced with the Sentinel. Maps and sequences keep their keys, order and length.
func Normalize(value any) any {
	switch typed := value.(type) {
	case Document:
		return Document(normalizeMap(typed))
	case map[string]any:
		return normalizeMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = Normalize(item)
		}
		return out
	case string:
		if typed == "" {
			return Sentinel
		}
		return typed
	default:
		return value
	}
}

// NormalizeDocument is Normalize specialised to a whole Document.
func NormalizeDocument(doc Document) Document {
	if doc == nil {
		return Document{}
	}
	return Document(normalizeMap(doc))
}

func normalizeMap(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for key, item := range raw {
		out[key] = Normalize(item)
	}
	return out
}
