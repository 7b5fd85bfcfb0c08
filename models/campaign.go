package models

// Campaign is a named purpose inside a project that groups generated assets.
type Campaign struct {
	ID        int64  `json:"id"`
	Purpose   string `json:"purpose"`
	ProjectID int64  `json:"projectId"`
}

// TableName returns the name of the database table
// associated with the Campaign model.
func (c Campaign) TableName() string {
	return "campaigns"
}
