package res

// UserResponse is the summary embedded wherever a record references a
// user. Writes never accept it; they take a bare id instead.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
