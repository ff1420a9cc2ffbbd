package model

// Asset is an uploaded image stored verbatim. Assets are referenced by the
// signature singleton; replaced ones simply become unreferenced.
type Asset struct {
	ID          string `gorm:"column:id;type:varchar(36);primaryKey"`
	ContentType string `gorm:"column:content_type;type:varchar(100);not null"`
	Size        int64  `gorm:"column:size;not null"`
	Data        []byte `gorm:"column:data;not null"`

	BaseEntity
}

// TableName specifies the table name for Asset
func (*Asset) TableName() string {
	return "asset"
}
