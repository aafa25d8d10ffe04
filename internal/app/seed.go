package app

import (
	"time"

	"github.com/muhammadolammi/aithera/internal/models"
)

const seedSummary = "Proactive and results-driven Computer Science student with a passion for developing innovative software solutions. " +
	"Experienced in full-stack development with a focus on creating responsive and user-friendly web applications. " +
	"Seeking to leverage skills in JavaScript, React, and Node.js to contribute to a dynamic engineering team."

var seedSkills = []string{
	"JavaScript", "TypeScript", "React", "Node.js", "Express.js", "MongoDB",
	"SQL", "HTML/CSS", "Git", "Agile Methodologies", "REST APIs", "Jest",
}

func seedResume(name, email string) models.ResumeData {
	return models.ResumeData{
		PersonalDetails: models.PersonalDetails{
			Name:     name,
			Email:    email,
			Phone:    "555-123-4567",
			LinkedIn: "linkedin.com/in/janedoe",
			Github:   "github.com/janedoe",
		},
		Summary: seedSummary,
		Skills:  append([]string(nil), seedSkills...),
	}
}

func seedStudent(id, name, email, branch string, year int, github string) *models.Student {
	return &models.Student{
		User: models.User{ID: id, Name: name, Role: models.RoleStudent},
		Profile: models.StudentProfile{
			Personal: models.PersonalProfile{FullName: name, Email: email},
			College:  models.CollegeProfile{Branch: branch, YearOfStudy: year},
		},
		Integrations: models.Integrations{Github: github},
		ResumeData:   seedResume(name, email),
	}
}

// seed returns the fixed set of demo users the platform starts with.
func seed() ([]*models.Student, []*models.Teacher, models.User) {
	alice := seedStudent("student_1", "Alice Johnson", "alice.j@email.com", "Computer Science & Engineering", 3, "alice-j")
	alice.Profile.Personal.DateOfBirth = "2002-08-15"
	alice.Profile.Personal.ContactNumber = "123-456-7890"
	alice.Profile.College = models.CollegeProfile{
		CollegeName:      "State University of Technology",
		Branch:           "Computer Science & Engineering",
		YearOfStudy:      3,
		EnrollmentNumber: "SUT2022CS001",
		CGPA:             "8.8",
		ActiveBacklogs:   "0",
		CollegeEmail:     "alice.j@sut.edu",
	}
	alice.Profile.Interests = models.CareerInterests{
		InternshipExperience:          "Summer Intern at TechCorp - Worked on frontend development for their flagship product using React.",
		ParticipatedInCampusInterview: "No",
		PreferredCompanies:            "Google, Microsoft",
		JobRoleInterests:              "Software Developer, Frontend Developer",
	}
	alice.Profile.ResumeURL = "alice_johnson_resume.pdf"
	alice.Profile.IsVerified = true
	alice.Integrations.LinkedIn = "https://linkedin.com/in/alicej"
	alice.CompletedMilestones = []models.CompletedMilestone{{
		ID:          models.MilestoneID(1, "Fall Semester", "Foundations of Programming"),
		CompletedAt: time.Date(2023, time.October, 15, 10, 0, 0, 0, time.UTC),
	}}

	students := []*models.Student{
		alice,
		seedStudent("student_2", "Bob Williams", "bob.w@email.com", "Mechanical Engineering", 4, "bob-w"),
		seedStudent("student_3", "Charlie Brown", "charlie.b@email.com", "Electrical Engineering", 2, "charlie-b"),
	}
	teachers := []*models.Teacher{
		{User: models.User{ID: "teacher_1", Name: "Dr. Evelyn Reed", Role: models.RoleTeacher}, StudentIDs: []string{"student_1", "student_2"}},
		{User: models.User{ID: "teacher_2", Name: "Mr. Johnathan Chen", Role: models.RoleTeacher}, StudentIDs: []string{"student_3"}},
	}
	admin := models.User{ID: "admin_1", Name: "Principal Thompson", Role: models.RoleAdmin}
	return students, teachers, admin
}
