package catalog

import "ux-matching-be/internal/entity"

// Suppliers is the candidate set of the selection screen, best match
// first. The recommended subset is the default selection.
var Suppliers = []entity.Supplier{
	{
		Id: "1", ProductName: "Pont élévateur Pro 4000", SupplierName: "ÉQUIPGARAGE",
		Rating: 4.8, MatchScore: 92, IsRecommended: true, IsCertified: true,
		Description: "Pont élévateur professionnel 2 colonnes avec traverse supérieure.",
		MatchGaps:   []string{"Délai de livraison 3 semaines"},
	},
	{
		Id: "2", ProductName: "Pont 2 colonnes hydraulique 4T", SupplierName: "GARAGE ÉQUIPEMENT",
		Rating: 4.5, MatchScore: 85, IsRecommended: true,
	},
	{
		Id: "3", ProductName: "Élévateur 2 colonnes traverse haute", SupplierName: "AUTOMOTIVE PRO",
		Rating: 4.3, MatchScore: 80, IsRecommended: true, IsCertified: true,
	},
	{
		Id: "4", ProductName: "Pont élévateur professionnel 4T", SupplierName: "LIFTPRO FRANCE",
		Rating: 4.1, MatchScore: 72, IsRecommended: true,
	},
	{
		Id: "5", ProductName: "Pont garage 2 colonnes", SupplierName: "MECATOOLS",
		Rating: 3.9, MatchScore: 58,
	},
	{
		Id: "6", ProductName: "Élévateur auto 4T basique", SupplierName: "AUTOEQUIP",
		Rating: 3.7, MatchScore: 52,
	},
	{
		Id: "7", ProductName: "Pont élévateur économique", SupplierName: "DISCOUNT GARAGE",
		Rating: 3.5, MatchScore: 45,
	},
	{
		Id: "8", ProductName: "Pont 2 colonnes PRO-LIFT", SupplierName: "PROLIFT EUROPE",
		Rating: 4.0, MatchScore: 55,
	},
	{
		Id: "9", ProductName: "Élévateur TITAN 4000", SupplierName: "TITAN ÉQUIPEMENT",
		Rating: 3.8, MatchScore: 48,
	},
	{
		Id: "10", ProductName: "Pont RAPIDO 2C", SupplierName: "RAPIDO GARAGE",
		Rating: 3.6, MatchScore: 42,
	},
	{
		Id: "11", ProductName: "Pont MASTER PRO 4T", SupplierName: "MASTER ÉQUIP",
		Rating: 4.2, MatchScore: 60, IsCertified: true,
	},
	{
		Id: "12", ProductName: "Élévateur BUDGET-LIFT", SupplierName: "BUDGET ÉQUIPEMENT",
		Rating: 3.4, MatchScore: 38,
	},
}

// DefaultSelection returns the ids of the recommended suppliers.
func DefaultSelection() []string {
	var ids []string
	for _, s := range Suppliers {
		if s.IsRecommended {
			ids = append(ids, s.Id)
		}
	}
	return ids
}

// SupplierById looks a supplier up in the catalog.
func SupplierById(id string) (*entity.Supplier, bool) {
	for i := range Suppliers {
		if Suppliers[i].Id == id {
			return &Suppliers[i], true
		}
	}
	return nil, false
}
