package models

const unknownLocation = "Unknown Location"

type VendorProfile struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Compound string `json:"compound,omitempty"`
}

// Location is the compound shown next to the vendor name.
func (p VendorProfile) Location() string {
	if p.Compound == "" {
		return unknownLocation
	}
	return p.Compound
}
