package envdoc

import "strings"

// LineKind is the semantic kind of one line of an annotated .env file.
// Kinds are declared in matching priority order; KindEnvVariable is the
// catch-all and must stay last.
type LineKind int

const (
	KindResponsible LineKind = iota
	KindType
	KindSecret
	KindPolicy
	KindDocs
	KindDescription
	KindEnvVariable
)

const (
	commentMarker    = "#"
	annotationSuffix = "]"
)

// Every annotation prefix starts with the comment marker, so
// KindDescription has to be tested after the bracketed kinds.
var classifyOrder = []LineKind{
	KindResponsible,
	KindType,
	KindSecret,
	KindPolicy,
	KindDocs,
	KindDescription,
}

func (k LineKind) Prefix() string {
	switch k {
	case KindResponsible:
		return "# [@responsible="
	case KindType:
		return "# [@type="
	case KindSecret:
		return "# [@secret="
	case KindPolicy:
		return "# [@policy="
	case KindDocs:
		return "# [@docs="
	case KindDescription:
		return commentMarker
	default:
		return ""
	}
}

func (k LineKind) Suffix() string {
	switch k {
	case KindResponsible, KindType, KindSecret, KindPolicy, KindDocs:
		return annotationSuffix
	default:
		return ""
	}
}

func (k LineKind) String() string {
	switch k {
	case KindResponsible:
		return "responsible"
	case KindType:
		return "type"
	case KindSecret:
		return "secret"
	case KindPolicy:
		return "policy"
	case KindDocs:
		return "docs"
	case KindDescription:
		return "description"
	case KindEnvVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Slot returns the table column an annotation kind contributes to.
// KindEnvVariable fills two columns and is handled by the generator.
func (k LineKind) Slot() (FieldSlot, bool) {
	switch k {
	case KindResponsible:
		return SlotResponsible, true
	case KindType:
		return SlotType, true
	case KindSecret:
		return SlotSecret, true
	case KindPolicy:
		return SlotPolicy, true
	case KindDocs:
		return SlotDocs, true
	case KindDescription:
		return SlotDescription, true
	default:
		return 0, false
	}
}

// IsBlank reports whether a raw line carries nothing: empty after trimming,
// or a bare comment marker.
func IsBlank(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || trimmed == commentMarker
}

// Classify determines the kind of a raw line and extracts its payload.
// Malformed annotations (missing closing bracket) never fail; the text that
// could not be stripped is kept as content instead.
func Classify(raw string) (LineKind, string) {
	trimmed := strings.TrimSpace(raw)

	kind := KindEnvVariable
	for _, k := range classifyOrder {
		if strings.HasPrefix(trimmed, k.Prefix()) {
			kind = k
			break
		}
	}

	content := extract(trimmed, kind)
	if kind == KindDescription {
		content = strings.TrimSpace(content)
	}
	return kind, content
}

func extract(trimmed string, kind LineKind) string {
	afterPrefix, ok := strings.CutPrefix(trimmed, kind.Prefix())
	if !ok {
		afterPrefix = trimmed
	}
	content, ok := strings.CutSuffix(afterPrefix, kind.Suffix())
	if !ok {
		return afterPrefix
	}
	return content
}
