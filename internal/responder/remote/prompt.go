package remote

import (
	"fmt"
	"strings"

	"github.com/syam1133/portfolio-assistant/internal/model/profile"
)

// BuildSystemPrompt renders the profile into the knowledge-base instruction
// sent as the single leading system message of every completion request.
func BuildSystemPrompt(p *profile.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a friendly AI assistant helping visitors learn about %s. ", p.Name)
	fmt.Fprintf(&b, "Be conversational, enthusiastic, and personable - like a friend sharing cool stories about %s's work! ", p.Name)
	b.WriteString("Use a casual, human tone while still being informative.\n")

	writeSection(&b, "BACKGROUND", p.Background)
	writeSection(&b, "EDUCATION", p.Education)
	writeSection(&b, "CERTIFICATIONS", p.Certifications)

	if len(p.Experience) > 0 {
		b.WriteString("\nWORK EXPERIENCE:\n")
		for i, role := range p.Experience {
			fmt.Fprintf(&b, "\n%d. %s - %s (%s)\n", i+1, role.Title, role.Company, role.Period)
			for _, note := range role.Notes {
				fmt.Fprintf(&b, "   - %s\n", note)
			}
		}
	}

	if len(p.Skills) > 0 {
		b.WriteString("\nTECHNICAL SKILLS:\n")
		for _, group := range p.Skills {
			fmt.Fprintf(&b, "- %s: %s\n", group.Area, strings.Join(group.Items, ", "))
		}
	}

	if len(p.Projects) > 0 {
		b.WriteString("\nFEATURED PROJECTS:\n")
		for i, project := range p.Projects {
			fmt.Fprintf(&b, "\n%d. %s\n", i+1, project.Name)
			for _, highlight := range project.Highlights {
				fmt.Fprintf(&b, "   - %s\n", highlight)
			}
			if len(project.Technologies) > 0 {
				fmt.Fprintf(&b, "   - Technologies: %s\n", strings.Join(project.Technologies, ", "))
			}
			if project.Repo != "" {
				fmt.Fprintf(&b, "   - GitHub: %s\n", project.Repo)
			}
		}
	}

	writeSection(&b, "KEY ACHIEVEMENTS", p.Achievements)

	fmt.Fprintf(&b, "\nBe warm, friendly, and genuinely enthusiastic about %s's work! ", p.Name)
	b.WriteString("Mix technical details with casual conversation. Use contractions (he's, that's, it's), add personality, ")
	b.WriteString("and make it feel like you're chatting with a friend. Keep responses conversational - not too formal or robotic. ")
	fmt.Fprintf(&b, "If you don't know something, just say so in a friendly way and suggest reaching out to %s directly.\n", p.Name)
	b.WriteString("\nKeep it light and engaging while being helpful!")

	return b.String()
}

func writeSection(b *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}

	fmt.Fprintf(b, "\n%s:\n", title)
	for _, line := range lines {
		fmt.Fprintf(b, "- %s\n", line)
	}
}
