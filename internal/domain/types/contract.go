package types

// ContractSubmission is the manual (unpaid) contract wire payload.
type ContractSubmission struct {
	PackageID   PackageID `json:"packageId"`
	PackageName string    `json:"packageName"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	WeddingDate string    `json:"weddingDate"`
	Signature   string    `json:"signature"`
}

// SubmitResponse answers a delivered contract submission.
type SubmitResponse struct {
	Success bool `json:"success"`
}
