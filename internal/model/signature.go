package model

// Signature is the singleton authorizing-signature reference. At most one row
// exists; uploading a new signature replaces the AssetID in place.
type Signature struct {
	ID      uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	AssetID string `gorm:"column:asset_id;type:varchar(36);not null"`

	BaseEntity
}

// TableName specifies the table name for Signature
func (*Signature) TableName() string {
	return "signature"
}
