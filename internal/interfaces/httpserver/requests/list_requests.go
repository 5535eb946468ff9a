package requests

// ListQuery binds the query parameters of the collection endpoints.
type ListQuery struct {
	Search    string `form:"search"`
	Page      int    `form:"page,default=1"`
	Sort      string `form:"sort"`
	Direction string `form:"direction,default=asc"`
}
