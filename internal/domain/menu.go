package domain

// MenuItem is a single entry of the externally hosted café menu.
// Name is the identity key across the whole menu: the draft cart keys
// lines by name, so two categories cannot share an item name without
// colliding.
type MenuItem struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
}
