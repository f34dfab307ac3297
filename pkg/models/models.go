package models

// Resource categories accepted by the validation layer.
var ResourceTypes = []string{"shelter", "food", "health", "job", "education", "rehab", "legal"}

type Resource struct {
	ID            int64    `json:"id" db:"id"`
	Name          string   `json:"name" db:"name"`
	Type          string   `json:"type" db:"type"`
	Address       string   `json:"address" db:"address"`
	Latitude      float64  `json:"latitude" db:"latitude"`
	Longitude     float64  `json:"longitude" db:"longitude"`
	Phone         string   `json:"phone,omitempty" db:"phone"`
	Hours         string   `json:"hours,omitempty" db:"hours"`
	Description   string   `json:"description,omitempty" db:"description"`
	Capacity      string   `json:"capacity,omitempty" db:"capacity"`
	Eligibility   []string `json:"eligibility" db:"eligibility"`
	Website       string   `json:"website,omitempty" db:"website"`
	ContactPerson string   `json:"contactPerson,omitempty" db:"contact_person"`
	Requirements  string   `json:"requirements,omitempty" db:"requirements"`
	Services      []string `json:"services,omitempty" db:"services"`
	IsActive      bool     `json:"isActive" db:"is_active"`
	Created       int64    `json:"created" db:"created"`
	Updated       int64    `json:"updated" db:"updated"`
}

type Job struct {
	ID             int64    `json:"id" db:"id"`
	Title          string   `json:"title" db:"title"`
	Company        string   `json:"company" db:"company"`
	Description    string   `json:"description" db:"description"`
	Requirements   string   `json:"requirements,omitempty" db:"requirements"`
	Location       string   `json:"location" db:"location"`
	Latitude       *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude      *float64 `json:"longitude,omitempty" db:"longitude"`
	Salary         string   `json:"salary,omitempty" db:"salary"`
	EmploymentType string   `json:"employmentType" db:"employment_type"`
	PostedDate     int64    `json:"postedDate" db:"posted_date"`
	ContactEmail   string   `json:"contactEmail,omitempty" db:"contact_email"`
	ContactPhone   string   `json:"contactPhone,omitempty" db:"contact_phone"`
	Website        string   `json:"website,omitempty" db:"website"`
	Source         string   `json:"source,omitempty" db:"source"`
	SourceID       string   `json:"sourceId,omitempty" db:"source_id"`
	IsRemote       bool     `json:"isRemote" db:"is_remote"`
	IsActive       bool     `json:"isActive" db:"is_active"`
	Created        int64    `json:"created" db:"created"`
	Updated        int64    `json:"updated" db:"updated"`
}

type Admin struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"password_hash,omitempty" db:"password_hash"`
	Created      int64  `json:"created" db:"created"`
}

// Schema is a stored JSON schema used by the validation layer.
type Schema struct {
	ID         int64  `json:"id" db:"id"`
	Kind       string `json:"kind" db:"kind"`
	SchemaJSON string `json:"schema_json" db:"schema_json"`
	Created    int64  `json:"created" db:"created"`
	Updated    int64  `json:"updated" db:"updated"`
}

// ResumeInput is the payload accepted by the resume generation endpoint.
type ResumeInput struct {
	Name        string           `json:"name"`
	ContactInfo *ResumeContact   `json:"contactInfo,omitempty"`
	Summary     string           `json:"summary,omitempty"`
	Experience  []ResumeJobEntry `json:"experience,omitempty"`
	Education   []ResumeSchool   `json:"education,omitempty"`
	Skills      []string         `json:"skills,omitempty"`
}

type ResumeContact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

type ResumeJobEntry struct {
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type ResumeSchool struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
}
