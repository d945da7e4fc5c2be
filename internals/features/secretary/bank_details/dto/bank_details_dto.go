package dto

// UpdateBankDetailsRequest targets a secretary by id; all bank fields are
// mandatory so a partial update can never leave half-filled payout details.
type UpdateBankDetailsRequest struct {
	ID            string `json:"id" validate:"required,uuid4"`
	AccountNumber string `json:"accountNumber" validate:"required,numeric,min=9,max=18"`
	IFSCCode      string `json:"ifscCode" validate:"required"`
	BankName      string `json:"bankName" validate:"required"`
	BranchName    string `json:"branchName" validate:"required"`
}
