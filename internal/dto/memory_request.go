package dto

type MemoryRequest struct {
	Title       string               `json:"title"`
	Date        string               `json:"date"`
	Location    string               `json:"location"`
	Description string               `json:"description"`
	Images      []MemoryImageRequest `json:"images"`
}

type MemoryImageRequest struct {
	Data    string `json:"data"`
	Caption string `json:"caption"`
}

// MemoryUpdateRequest carries a partial update. Nil fields are left
// untouched; a non-nil pointer always wins, even when it points at the
// zero value.
type MemoryUpdateRequest struct {
	Title       *string               `json:"title"`
	Date        *string               `json:"date"`
	Location    *string               `json:"location"`
	Description *string               `json:"description"`
	Images      *[]MemoryImageRequest `json:"images"`
}
