package types

import "time"

// User is a member of the social network.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Friendship is an undirected edge between two user ids.
type Friendship struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Interest pairs a user id with a topic that user likes.
type Interest struct {
	UserID int    `json:"user_id"`
	Topic  string `json:"topic"`
}

// SalaryTenure is an annual salary and the years of experience behind it.
type SalaryTenure struct {
	Salary float64 `json:"salary"`
	Tenure float64 `json:"tenure"`
}

// AccountRecord records whether a user with the given experience pays.
type AccountRecord struct {
	YearsExperience float64 `json:"years_experience"`
	Paid            bool    `json:"paid"`
}

// StatusUpdate is a post on the network.
type StatusUpdate struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	LikedBy   []string  `json:"liked_by"`
}

// MatrixEntry is one nonzero cell of a sparse matrix named "A" or "B".
type MatrixEntry struct {
	Matrix string  `json:"matrix"`
	I      int     `json:"i"`
	J      int     `json:"j"`
	Value  float64 `json:"value"`
}

// Cell addresses a position in a matrix product.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
