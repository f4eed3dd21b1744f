package fixtures

import (
	"fmt"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/insight"
)

// ==========================================
// DEPARTMENTS
// ==========================================

// Departments is the label set the roster source assigns from, in display order.
var Departments = []string{
	"Engineering",
	"Marketing",
	"Sales",
	"HR",
	"Finance",
	"Operations",
	"Design",
	"Product",
}

// DepartmentFor assigns a department from the employee id.
func DepartmentFor(id int) string {
	return Departments[mod(id-1, len(Departments))]
}

// PerformanceFor assigns a 1..5 rating from the employee id.
func PerformanceFor(id int) int {
	return mod(id*7, 5) + 1
}

// BioFor builds the profile blurb.
func BioFor(id int, department string) string {
	years := 3 + mod(id, 10)
	return fmt.Sprintf("Experienced professional with %d years in %s. Passionate about delivering high-quality results and driving innovation.", years, department)
}

// ==========================================
// PERFORMANCE REVIEWS
// ==========================================

var ReviewComments = []string{
	"Excellent performance this month. Keep up the great work!",
	"Good progress, but there's room for improvement in communication.",
	"Outstanding results and leadership demonstrated.",
	"Meeting expectations with consistent quality work.",
	"Strong technical skills and collaborative approach.",
}

var Reviewers = []string{"John Smith", "Sarah Johnson", "Mike Davis", "Lisa Wilson"}

// ==========================================
// PROJECTS
// ==========================================

// ProjectTemplates are the projects every profile lists. Dates are filled in per employee.
var ProjectTemplates = []insight.Project{
	{
		Name:        "E-commerce Platform Redesign",
		Status:      insight.ProjectStatusActive,
		Role:        "Frontend Developer",
		Description: "Leading the redesign of our main e-commerce platform with modern UI/UX principles.",
	},
	{
		Name:        "Mobile App Development",
		Status:      insight.ProjectStatusCompleted,
		Role:        "Team Lead",
		Description: "Successfully delivered a cross-platform mobile application for iOS and Android.",
	},
	{
		Name:        "Data Analytics Dashboard",
		Status:      insight.ProjectStatusOnHold,
		Role:        "Full Stack Developer",
		Description: "Building an interactive dashboard for real-time business analytics and reporting.",
	},
}

// ==========================================
// FEEDBACK
// ==========================================

var FeedbackTypes = []insight.FeedbackType{
	insight.FeedbackPositive,
	insight.FeedbackConstructive,
	insight.FeedbackNeutral,
}

var FeedbackMessages = []string{
	"Great teamwork and communication skills demonstrated.",
	"Shows strong initiative and problem-solving abilities.",
	"Could improve time management and prioritization.",
	"Excellent technical skills and attention to detail.",
	"Good collaboration with cross-functional teams.",
	"Needs to work on presentation and public speaking skills.",
	"Consistently delivers high-quality work on time.",
	"Shows potential for leadership roles in the future.",
}

var FeedbackSources = []string{"Manager", "Peer", "Client", "Team Lead"}

// Pick returns list[n mod len(list)] for any n.
func Pick[T any](list []T, n int) T {
	return list[mod(n, len(list))]
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
