package domain

// Product is a catalog entry. Prices are stored in minor currency units.
// Inventory and Active are modeled but checkout neither decrements nor
// enforces them; stock enforcement is deliberately out of scope for now.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int64
	Category    string
	Active      bool
	Inventory   int
	Featured    bool
}
