package domain

// ChartImportMode selects how a batch import resolves the hierarchy.
type ChartImportMode string

const (
	// ImportExplicit resolves parents from each row's ParentCode.
	ImportExplicit ChartImportMode = "EXPLICIT"
	// ImportInferFromCode guesses parents from code shape. Convenience only.
	ImportInferFromCode ChartImportMode = "INFER_FROM_CODE"
)

// IsValid reports whether m is a known import mode.
func (m ChartImportMode) IsValid() bool {
	return m == ImportExplicit || m == ImportInferFromCode
}

// ChartImportRow is one account of a chart import.
type ChartImportRow struct {
	Row          int // 1-based position in the source file; zero means position in the batch
	Code         string
	Name         string
	AccountType  AccountType
	ParentCode   string
	AllowPosting *bool
	Description  string
}

// ChartImportResult lists created accounts and rejected rows.
type ChartImportResult struct {
	Created  []Account       `json:"created"`
	Failures []ImportFailure `json:"failures"`
}
