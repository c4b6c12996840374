package dto

// SignUpRequest is the signup form.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Nickname string `json:"nickname" binding:"required,nickname"`
	Name     string `json:"name" binding:"max=100"`
	Password string `json:"password" binding:"required,min=8,containsuppercase,containslowercase,containsdigit,containssymbol"`
}

// DuplicateQuery is bound from GET /users/duplicate?field=&value=.
type DuplicateQuery struct {
	Field string `form:"field" binding:"required,oneof=nickname email"`
	Value string `form:"value" binding:"required"`
}
