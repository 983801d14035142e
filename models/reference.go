package models

// Reference entities are backend-owned lookup records resolved by name.
// The client never caches them across sessions; resolution is create-first
// with a list-and-match fallback (see the session service).

// Course is a course lookup record identified by its code.
type Course struct {
	ID   *int64  `json:"id"`
	Code *string `json:"code"`
}

// Major is a major lookup record identified by its name.
type Major struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// Minor is a minor lookup record identified by its name.
type Minor struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// College is a college lookup record identified by its name.
type College struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// StudyAreaRef is the study-area record nested in rich profiles.
type StudyAreaRef struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// StudyTimeRef is a study-time record nested in rich profiles.
type StudyTimeRef struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// CreateCourseRequest is the request body for POST /courses/.
type CreateCourseRequest struct {
	Code string `json:"code"`
}

// CreateMajorRequest is the request body for POST /majors/.
type CreateMajorRequest struct {
	Name string `json:"name"`
}

// CreateCollegeRequest is the request body for POST /colleges/.
type CreateCollegeRequest struct {
	Name string `json:"name"`
}
