package domain

// ImportRow is one validated row of a bulk entry import, already mapped from
// the external tabular format to typed fields. References are optional.
type ImportRow struct {
	RowNumber         int
	Description       string
	DebitAccountName  string
	CreditAccountName string
	Amount            string
	DocumentRef       string
	BankRef           string
}

// ImportResult reports the outcome of a bulk import. The batch continues past
// per-row failures; Errors holds a bounded list of row-level messages.
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}
