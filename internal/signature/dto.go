package signature

import "time"

type SetSignatureRequest struct {
	AssetID string `json:"assetId" binding:"required,uuid"`
}

type AssetRef struct {
	ID  string `json:"_id"`
	URL string `json:"url"`
}

type UploadResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Asset   AssetRef `json:"asset"`
}

type SignatureResponse struct {
	AssetID   string    `json:"assetId"`
	URL       string    `json:"url"`
	UpdatedAt time.Time `json:"updatedAt"`
}
