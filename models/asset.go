package models

// Asset is a generated image bound to a campaign.
type Asset struct {
	ID int64 `json:"id"`

	// ImageData is the image inlined as a data URL
	// (data:<mime>;base64,<payload>). Never empty once persisted.
	ImageData string `json:"imageData"`

	// Prompt is the text the image was generated from.
	Prompt string `json:"prompt"`

	CampaignID int64 `json:"campaignId"`
}

// TableName returns the name of the database table
// associated with the Asset model.
func (a Asset) TableName() string {
	return "assets"
}

// GenerateAssetRequest is the body of an asset generation request.
type GenerateAssetRequest struct {
	CampaignID ID     `json:"campaignId"`
	Prompt     string `json:"prompt"`

	// InputImage is an optional reference image, either raw base64 or a
	// full data URL.
	InputImage string `json:"inputImage,omitempty"`
}

// UpdateAssetRequest is the body of an asset regeneration request.
type UpdateAssetRequest struct {
	Prompt string `json:"prompt"`
}
