package types

// EquipmentItem is an entry of the grouped equipment listing
type EquipmentItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Brand *string `json:"brand,omitempty"`
	Type  string  `json:"type"`
}

// EquipmentDetail is equipment as shown on a recipe detail
type EquipmentDetail struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Brand         *string `json:"brand,omitempty"`
	Description   *string `json:"description,omitempty"`
	AffiliateLink *string `json:"affiliateLink,omitempty"`
	Type          string  `json:"type"`
}

// EquipmentGroups is the body of GET /api/equipment, keyed by type name
type EquipmentGroups map[string][]EquipmentItem
