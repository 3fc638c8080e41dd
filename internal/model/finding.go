package model

// Finding describes one validation issue.
//
// Optional fields use their zero value to mean "absent": an empty string
// for the text fields and 0 for Line.
type Finding struct {
	// Severity is the parsed classification.
	Severity Severity `json:"-"`

	// RawSeverity is the severity string the validator supplied.
	RawSeverity string `json:"severity"`

	// Message is the human-readable description. Always set.
	Message string `json:"message"`

	// NodeType is the n8n node type the finding relates to, e.g. "n8n-nodes-base.set".
	NodeType string `json:"node_type,omitempty"`

	// PropertyPath is the dotted path of the offending property.
	PropertyPath string `json:"property_path,omitempty"`

	// FilePath is the workflow file the finding came from.
	FilePath string `json:"file_path,omitempty"`

	// Line is the 1-based line number in FilePath.
	Line int `json:"line_number,omitempty"`

	// Expected describes the value the validator wanted.
	Expected string `json:"expected,omitempty"`

	// Actual describes the value the validator found.
	Actual string `json:"actual,omitempty"`
}

// FindingOption sets an optional field of a Finding.
type FindingOption func(*Finding)

// WithNodeType sets the node type context.
func WithNodeType(nodeType string) FindingOption {
	return func(f *Finding) {
		f.NodeType = nodeType
	}
}

// WithPropertyPath sets the property path context.
func WithPropertyPath(path string) FindingOption {
	return func(f *Finding) {
		f.PropertyPath = path
	}
}

// WithLine sets the line number context. Non-positive values are ignored.
func WithLine(line int) FindingOption {
	return func(f *Finding) {
		if line > 0 {
			f.Line = line
		}
	}
}

// WithFile sets the file path context.
func WithFile(path string) FindingOption {
	return func(f *Finding) {
		f.FilePath = path
	}
}

// WithExpected sets the expected value description.
func WithExpected(expected string) FindingOption {
	return func(f *Finding) {
		f.Expected = expected
	}
}

// WithActual sets the actual value description.
func WithActual(actual string) FindingOption {
	return func(f *Finding) {
		f.Actual = actual
	}
}

// NewFinding creates a Finding from a raw severity string and a message.
func NewFinding(severity, message string, opts ...FindingOption) Finding {
	f := Finding{
		Severity:    ParseSeverity(severity),
		RawSeverity: severity,
		Message:     message,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Label returns the uppercase severity label shown to the operator:
// "ERROR", "WARNING", "INFO", or the uppercased raw severity for SeverityOther.
func (f Finding) Label() string {
	switch f.Severity {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	default:
		return upperLabel(f.RawSeverity)
	}
}

// GroupBySeverity splits findings into one bucket per severity in the order
// returned by Severities. Input order is preserved inside each bucket.
// Every finding lands in exactly one bucket.
func GroupBySeverity(findings []Finding) [][]Finding {
	order := Severities()
	groups := make([][]Finding, len(order))
	for _, f := range findings {
		idx := int(f.Severity)
		if idx < 0 || idx >= len(groups) {
			idx = int(SeverityOther)
		}
		groups[idx] = append(groups[idx], f)
	}
	return groups
}
