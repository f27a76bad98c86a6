package entity

// Supplier is a candidate the buyer can include in the lead. The catalog is
// fixed per rubrique; matching metadata is display-only here.
type Supplier struct {
	Id            string   `json:"id"`
	ProductName   string   `json:"productName"`
	SupplierName  string   `json:"supplierName"`
	Rating        float64  `json:"rating"`
	MatchScore    int      `json:"matchScore"`
	IsRecommended bool     `json:"isRecommended"`
	IsCertified   bool     `json:"isCertified,omitempty"`
	Description   string   `json:"description,omitempty"`
	MatchGaps     []string `json:"matchGaps,omitempty"`
}
