package dto

type Divider struct {
	ID         uint64 `json:"id"`
	Column     string `json:"column"`
	LabelAbove string `json:"label_above"`
	LabelBelow string `json:"label_below"`
	Position   int    `json:"position"`
	CreatedAt  string `json:"created_at"`
}

type MoveDividerRequest struct {
	Position *int `json:"position" binding:"required"`
}
