package domain

func boolPtr(b bool) *bool { return &b }

// DefaultChart is the starter chart seeded into new workplaces. Codes one and
// two characters long are control accounts; four-character codes post.
func DefaultChart() []ChartImportRow {
	return []ChartImportRow{
		{Code: "1", Name: "Assets", AccountType: Asset},
		{Code: "11", Name: "Current Assets", AccountType: Asset, ParentCode: "1"},
		{Code: "1101", Name: "Cash on Hand", AccountType: Asset, ParentCode: "11", AllowPosting: boolPtr(true)},
		{Code: "1102", Name: "Business Checking", AccountType: Asset, ParentCode: "11", AllowPosting: boolPtr(true), Description: "Primary checking account"},
		{Code: "1103", Name: "Business Savings", AccountType: Asset, ParentCode: "11", AllowPosting: boolPtr(true)},
		{Code: "1104", Name: "Accounts Receivable", AccountType: Asset, ParentCode: "11", AllowPosting: boolPtr(true)},
		{Code: "2", Name: "Liabilities", AccountType: Liability},
		{Code: "21", Name: "Current Liabilities", AccountType: Liability, ParentCode: "2"},
		{Code: "2101", Name: "Accounts Payable", AccountType: Liability, ParentCode: "21", AllowPosting: boolPtr(true)},
		{Code: "2102", Name: "Credit Card", AccountType: Liability, ParentCode: "21", AllowPosting: boolPtr(true)},
		{Code: "3", Name: "Equity", AccountType: Equity},
		{Code: "31", Name: "Owner's Equity", AccountType: Equity, ParentCode: "3"},
		{Code: "3101", Name: "Owner's Capital", AccountType: Equity, ParentCode: "31", AllowPosting: boolPtr(true)},
		{Code: "3102", Name: "Retained Earnings", AccountType: Equity, ParentCode: "31", AllowPosting: boolPtr(true)},
		{Code: "4", Name: "Income", AccountType: Income},
		{Code: "41", Name: "Operating Income", AccountType: Income, ParentCode: "4"},
		{Code: "4101", Name: "Service Revenue", AccountType: Income, ParentCode: "41", AllowPosting: boolPtr(true)},
		{Code: "4102", Name: "Product Sales", AccountType: Income, ParentCode: "41", AllowPosting: boolPtr(true)},
		{Code: "5", Name: "Costs", AccountType: Cost},
		{Code: "51", Name: "Cost of Sales", AccountType: Cost, ParentCode: "5"},
		{Code: "5101", Name: "Cost of Goods Sold", AccountType: Cost, ParentCode: "51", AllowPosting: boolPtr(true)},
		{Code: "6", Name: "Expenses", AccountType: Expense},
		{Code: "61", Name: "Operating Expenses", AccountType: Expense, ParentCode: "6"},
		{Code: "6101", Name: "Software & SaaS", AccountType: Expense, ParentCode: "61", AllowPosting: boolPtr(true)},
		{Code: "6102", Name: "Office Supplies", AccountType: Expense, ParentCode: "61", AllowPosting: boolPtr(true)},
		{Code: "6103", Name: "Professional Services", AccountType: Expense, ParentCode: "61", AllowPosting: boolPtr(true)},
		{Code: "6104", Name: "Bank Charges", AccountType: Expense, ParentCode: "61", AllowPosting: boolPtr(true)},
	}
}
