package domain

// IssueKind classifies why a quiz sentence was rejected.
type IssueKind string

const (
	IssueGenericTemplate IssueKind = "GENERIC_TEMPLATE"
	IssueTooShort        IssueKind = "TOO_SHORT"
	// IssueNoBlank covers any blank count other than one. A sentence with
	// several blanks is recorded here with the detail "more than one blank".
	IssueNoBlank         IssueKind = "NO_BLANK"
	IssueMorphologyLeak  IssueKind = "MORPHOLOGY_LEAK"
	IssuePossessiveBlank IssueKind = "POSSESSIVE_BLANK"
	IssueDuplicate       IssueKind = "DUPLICATE"
)

// AllIssueKinds lists issue kinds in report order.
var AllIssueKinds = []IssueKind{
	IssueGenericTemplate, IssueTooShort, IssueNoBlank,
	IssueMorphologyLeak, IssuePossessiveBlank, IssueDuplicate,
}

func (k IssueKind) String() string { return string(k) }

func (k IssueKind) IsValid() bool {
	switch k {
	case IssueGenericTemplate, IssueTooShort, IssueNoBlank,
		IssueMorphologyLeak, IssuePossessiveBlank, IssueDuplicate:
		return true
	}
	return false
}
