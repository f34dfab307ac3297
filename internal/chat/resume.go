package chat

import (
	"fmt"
	"strings"

	"github.com/pathfinderhq/pathfinder/pkg/models"
)

// BuildResumePrompt turns a validated resume payload into a sectioned prompt
// for the collaborator.
func BuildResumePrompt(in models.ResumeInput) string {
	var sb strings.Builder
	sb.WriteString("Create a professional resume based on the following information:\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", in.Name)

	if in.ContactInfo != nil {
		sb.WriteString("Contact Information:\n")
		if in.ContactInfo.Email != "" {
			fmt.Fprintf(&sb, "Email: %s\n", in.ContactInfo.Email)
		}
		if in.ContactInfo.Phone != "" {
			fmt.Fprintf(&sb, "Phone: %s\n", in.ContactInfo.Phone)
		}
		if in.ContactInfo.Location != "" {
			fmt.Fprintf(&sb, "Location: %s\n", in.ContactInfo.Location)
		}
	}

	if in.Summary != "" {
		fmt.Fprintf(&sb, "Professional Summary: %s\n", in.Summary)
	}

	if len(in.Experience) > 0 {
		sb.WriteString("Work Experience:\n")
		for i, exp := range in.Experience {
			fmt.Fprintf(&sb, "%d. %s at %s", i+1, exp.Position, exp.Company)
			if exp.StartDate != "" || exp.EndDate != "" {
				start := exp.StartDate
				if start == "" {
					start = "N/A"
				}
				end := exp.EndDate
				if end == "" {
					end = "Present"
				}
				fmt.Fprintf(&sb, " (%s - %s)", start, end)
			}
			fmt.Fprintf(&sb, "\n   %s\n", exp.Description)
		}
	}

	if len(in.Education) > 0 {
		sb.WriteString("Education:\n")
		for i, edu := range in.Education {
			fmt.Fprintf(&sb, "%d. %s from %s", i+1, edu.Degree, edu.Institution)
			if edu.Year != "" {
				fmt.Fprintf(&sb, " (%s)", edu.Year)
			}
			sb.WriteString("\n")
		}
	}

	if len(in.Skills) > 0 {
		fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(in.Skills, ", "))
	}

	sb.WriteString("\nFormat the resume in a clean, professional format using text formatting. Include appropriate sections like Contact Information, Professional Summary, Work Experience, Education, and Skills. Use clear headings and bullet points where appropriate. Focus on highlighting the person's experience and skills in a way that would be attractive to potential employers.")

	return sb.String()
}

// FallbackResume renders the payload into a plain skeleton when the
// collaborator is unavailable.
func FallbackResume(in models.ResumeInput) string {
	var sb strings.Builder
	sb.WriteString(strings.ToUpper(in.Name))
	sb.WriteString("\n")

	if in.ContactInfo != nil {
		var contact []string
		if in.ContactInfo.Email != "" {
			contact = append(contact, in.ContactInfo.Email)
		}
		if in.ContactInfo.Phone != "" {
			contact = append(contact, in.ContactInfo.Phone)
		}
		if in.ContactInfo.Location != "" {
			contact = append(contact, in.ContactInfo.Location)
		}
		if len(contact) > 0 {
			sb.WriteString(strings.Join(contact, " | "))
			sb.WriteString("\n")
		}
	}

	if in.Summary != "" {
		sb.WriteString("\nSUMMARY\n")
		sb.WriteString(in.Summary)
		sb.WriteString("\n")
	}

	if len(in.Experience) > 0 {
		sb.WriteString("\nEXPERIENCE\n")
		for _, exp := range in.Experience {
			fmt.Fprintf(&sb, "- %s, %s", exp.Position, exp.Company)
			if exp.StartDate != "" || exp.EndDate != "" {
				fmt.Fprintf(&sb, " (%s - %s)", exp.StartDate, exp.EndDate)
			}
			sb.WriteString("\n")
			if exp.Description != "" {
				fmt.Fprintf(&sb, "  %s\n", exp.Description)
			}
		}
	}

	if len(in.Education) > 0 {
		sb.WriteString("\nEDUCATION\n")
		for _, edu := range in.Education {
			fmt.Fprintf(&sb, "- %s, %s", edu.Degree, edu.Institution)
			if edu.Year != "" {
				fmt.Fprintf(&sb, " (%s)", edu.Year)
			}
			sb.WriteString("\n")
		}
	}

	if len(in.Skills) > 0 {
		sb.WriteString("\nSKILLS\n")
		sb.WriteString(strings.Join(in.Skills, ", "))
		sb.WriteString("\n")
	}

	return sb.String()
}
