package models

// User roles.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type User struct {
	ID        int    `json:"id"`
	Role      string `json:"role"` // admin, student
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Skills    string `json:"skills"`
	Interests string `json:"interests"`

	// Progress summary maintained by the backend.
	CompletedLessons  int `json:"completedLessons"`
	CompletedTopics   int `json:"completedTopics"`
	AssessmentsPassed int `json:"assessmentsPassed"`
}
