package models

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

type PersonalProfile struct {
	FullName      string `json:"fullName"`
	DateOfBirth   string `json:"dateOfBirth"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
}

type CollegeProfile struct {
	CollegeName      string `json:"collegeName"`
	Branch           string `json:"branch"`
	YearOfStudy      int    `json:"yearOfStudy"`
	EnrollmentNumber string `json:"enrollmentNumber"`
	CGPA             string `json:"cgpa"`
	ActiveBacklogs   string `json:"activeBacklogs"`
	CollegeEmail     string `json:"collegeEmail"`
}

type CareerInterests struct {
	InternshipExperience          string `json:"internshipExperience"`
	ParticipatedInCampusInterview string `json:"participatedInCampusInterview"`
	PreferredCompanies            string `json:"preferredCompanies"`
	JobRoleInterests              string `json:"jobRoleInterests"`
}

type StudentProfile struct {
	Personal   PersonalProfile `json:"personal"`
	College    CollegeProfile  `json:"college"`
	Interests  CareerInterests `json:"interests"`
	ResumeURL  string          `json:"resumeUrl,omitempty"`
	IsVerified bool            `json:"isVerified"`
}

type CompletedMilestone struct {
	ID          string    `json:"id"`
	CompletedAt time.Time `json:"completedAt"`
}

type CompletedInterview struct {
	ID          string            `json:"id"`
	Question    InterviewQuestion `json:"question"`
	Answer      string            `json:"answer"`
	Feedback    AnswerFeedback    `json:"feedback"`
	CompletedAt time.Time         `json:"completedAt"`
}

type CompletedChallenge struct {
	ID           string            `json:"id"`
	Challenge    CodingChallenge   `json:"challenge"`
	UserSolution string            `json:"userSolution"`
	Feedback     ChallengeFeedback `json:"feedback"`
	CompletedAt  time.Time         `json:"completedAt"`
	Difficulty   string            `json:"difficulty"`
}

type ApplicationStatus string

const (
	ApplicationApplied      ApplicationStatus = "Applied"
	ApplicationInterviewing ApplicationStatus = "Interviewing"
	ApplicationOffer        ApplicationStatus = "Offer"
	ApplicationRejected     ApplicationStatus = "Rejected"
	ApplicationSaved        ApplicationStatus = "Saved"
)

type Application struct {
	Job         JobListing        `json:"job"`
	Status      ApplicationStatus `json:"status" binding:"required,oneof=Applied Interviewing Offer Rejected Saved"`
	AppliedDate string            `json:"appliedDate"`
	Deadline    string            `json:"deadline"`
}

type Integrations struct {
	Github     string `json:"github"`
	LinkedIn   string `json:"linkedin"`
	LeetCode   string `json:"leetcode"`
	HackerRank string `json:"hackerrank"`
	CodeChef   string `json:"codechef"`
}

type PersonalDetails struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	Github   string `json:"github"`
}

type WorkExperience struct {
	ID          string `json:"id"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	ID             string `json:"id"`
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	GraduationDate string `json:"graduationDate"`
}

type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	RepoURL      string `json:"repoUrl"`
	LiveURL      string `json:"liveUrl"`
}

type ResumeData struct {
	PersonalDetails PersonalDetails  `json:"personalDetails"`
	Summary         string           `json:"summary"`
	Experience      []WorkExperience `json:"experience"`
	Education       []Education      `json:"education"`
	Projects        []Project        `json:"projects"`
	Skills          []string         `json:"skills"`
	TeacherFeedback string           `json:"teacherFeedback,omitempty"`
}

type PlatformFeedback struct {
	ID          string    `json:"id"`
	Feature     string    `json:"feature"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Student is a student user together with everything the platform tracks for them.
type Student struct {
	User
	Profile             StudentProfile       `json:"profile"`
	Roadmap             *Roadmap             `json:"roadmap"`
	CompletedMilestones []CompletedMilestone `json:"completedMilestones"`
	InterviewHistory    []CompletedInterview `json:"interviewHistory"`
	ChallengeHistory    []CompletedChallenge `json:"challengeHistory"`
	Applications        []Application        `json:"applications"`
	Integrations        Integrations         `json:"integrations"`
	ResumeData          ResumeData           `json:"resumeData"`
	PlatformFeedback    []PlatformFeedback   `json:"platformFeedback"`
}

type Teacher struct {
	User
	StudentIDs []string `json:"studentIds"`
}

// ChatMessage is one line of the recruiter chatbot conversation.
type ChatMessage struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
}
