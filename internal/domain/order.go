package domain

// OrderLine is one menu item in an order together with its quantity.
// A line never exists with Quantity < 1; dropping the quantity to zero
// removes the line instead.
type OrderLine struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// LineTotal returns price times quantity for this line.
func (l OrderLine) LineTotal() int {
	return l.Price * l.Quantity
}

// DraftState identifies the lifecycle state of the in-progress order.
type DraftState string

const (
	DraftEmpty    DraftState = "empty"
	DraftBuilding DraftState = "building"
	DraftEditing  DraftState = "editing"
)

// Draft is the one in-progress, uncommitted order. It holds the cart
// lines, the flat discount, and, when seeded from an existing invoice,
// the identity of the invoice being edited.
type Draft struct {
	Lines    []OrderLine
	Discount int

	editingID        string
	editingCreatedAt string
}

// State reports whether the draft is empty, building a new order, or
// editing an existing invoice. Editing persists even with an empty
// line list until the edit is committed or cancelled.
func (d *Draft) State() DraftState {
	if d.editingID != "" {
		return DraftEditing
	}
	if len(d.Lines) > 0 {
		return DraftBuilding
	}
	return DraftEmpty
}

// EditingID returns the ID of the invoice being edited, or "" when the
// draft is not in editing state.
func (d *Draft) EditingID() string {
	return d.editingID
}

// EditingCreatedAt returns the original creation timestamp of the
// invoice being edited, preserved so a commit keeps it unchanged.
func (d *Draft) EditingCreatedAt() string {
	return d.editingCreatedAt
}

// AddItem adds a menu item to the draft. If a line with the same name
// already exists its quantity is incremented by one, otherwise a new
// line with quantity one is appended.
func (d *Draft) AddItem(item MenuItem) {
	for i := range d.Lines {
		if d.Lines[i].Name == item.Name {
			d.Lines[i].Quantity++
			return
		}
	}
	d.Lines = append(d.Lines, OrderLine{
		Category: item.Category,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
}

// SetQuantity sets the quantity of the named line. A quantity of zero
// or less removes the line. Unknown names are ignored.
func (d *Draft) SetQuantity(name string, quantity int) {
	if quantity <= 0 {
		for i := range d.Lines {
			if d.Lines[i].Name == name {
				d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
				return
			}
		}
		return
	}
	for i := range d.Lines {
		if d.Lines[i].Name == name {
			d.Lines[i].Quantity = quantity
			return
		}
	}
}

// SetDiscount sets the flat discount, clamped at zero. There is no
// upper bound; the total is floored at zero downstream instead.
func (d *Draft) SetDiscount(amount int) {
	if amount < 0 {
		amount = 0
	}
	d.Discount = amount
}

// BeginEdit replaces the draft wholesale with the given invoice's
// lines and discount and enters editing state, remembering the invoice
// identity so a later commit updates it in place.
func (d *Draft) BeginEdit(inv Invoice) {
	lines := make([]OrderLine, len(inv.Items))
	copy(lines, inv.Items)
	d.Lines = lines
	d.Discount = inv.Discount
	d.editingID = inv.ID
	d.editingCreatedAt = inv.CreatedAt
}

// ResumeEdit restores a persisted editing target without touching the
// lines or discount, used when an in-progress edit is reloaded.
func (d *Draft) ResumeEdit(id, createdAt string) {
	d.editingID = id
	d.editingCreatedAt = createdAt
}

// Reset discards the draft lines, discount, and any editing target.
func (d *Draft) Reset() {
	d.Lines = nil
	d.Discount = 0
	d.editingID = ""
	d.editingCreatedAt = ""
}

// Subtotal returns the sum of price times quantity over all lines.
func (d *Draft) Subtotal() int {
	sum := 0
	for _, l := range d.Lines {
		sum += l.LineTotal()
	}
	return sum
}

// Total returns the subtotal minus discount, floored at zero.
func (d *Draft) Total() int {
	t := d.Subtotal() - d.Discount
	if t < 0 {
		return 0
	}
	return t
}

// TotalQuantity returns the number of individual items in the draft.
func (d *Draft) TotalQuantity() int {
	n := 0
	for _, l := range d.Lines {
		n += l.Quantity
	}
	return n
}
