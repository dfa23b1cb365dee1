package models

// Supplier supplies Products via Supplies rows.
type Supplier struct {
	SupplierID         int    `gorm:"column:supplier_id;primaryKey" json:"supplierId"`
	CompanyName        string `gorm:"column:company_name;not null" json:"companyName"`
	RepresentativeName string `gorm:"column:representative_name;not null" json:"representativeName"`
	PhoneNumber        string `gorm:"column:phone_number;not null" json:"phoneNumber"`
	Email              string `gorm:"column:email;not null" json:"email"`
}

func (Supplier) TableName() string { return "suppliers" }

func (s Supplier) RecordID() int { return s.SupplierID }
