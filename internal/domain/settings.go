package domain

// AppSettings holds the café name and the published menu sheet URL.
// JSON field names match the persisted slot shape.
type AppSettings struct {
	CafeName string `json:"cafeName"`
	MenuURL  string `json:"googleSheetURL"`
}

const defaultMenuURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vRElfB1B4GhD8R7KlodrSoNY_CNMpRYD-yQFXo7lGnkS-f1sipqbjV5AWFIRIXOzNRCptPQK_lV3ZCF/pub?output=csv"

// DefaultSettings returns the built-in settings used when nothing has
// been persisted yet.
func DefaultSettings() AppSettings {
	return AppSettings{
		CafeName: "کافه ما",
		MenuURL:  defaultMenuURL,
	}
}

// Merge overlays the non-empty fields of partial onto s and returns
// the result. Empty fields in partial keep the current values, so a
// restored payload missing a field never nulls out its default.
func (s AppSettings) Merge(partial AppSettings) AppSettings {
	out := s
	if partial.CafeName != "" {
		out.CafeName = partial.CafeName
	}
	if partial.MenuURL != "" {
		out.MenuURL = partial.MenuURL
	}
	return out
}
