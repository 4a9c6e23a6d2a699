package dto

// CreateItemRequest defines the structure for creating a new item.
type CreateItemRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Price       *int64  `json:"price" validate:"omitempty,gte=0"`
}

// UpdateItemRequest defines the structure for partially updating an existing
// item. Every field is optional; omitted fields keep their stored values.
type UpdateItemRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Price       *int64  `json:"price" validate:"omitempty,gte=0"`
}

// ListItemsQuery defines the pagination and filter parameters for listing.
type ListItemsQuery struct {
	Skip  int    `form:"skip,default=0" validate:"gte=0"`
	Limit int    `form:"limit,default=100" validate:"gte=1,lte=1000"`
	Title string `form:"title"`
}

// ItemResponse is the wire representation of a stored item. It always
// carries the assigned id; create/update requests never do.
type ItemResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
}

// DeleteItemResponse confirms a successful deletion.
type DeleteItemResponse struct {
	Message string `json:"message"`
}
