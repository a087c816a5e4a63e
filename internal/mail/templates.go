package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

// ChampionAssignedSubject is the subject of the champion assignment notification
const ChampionAssignedSubject = "A new idea has been assigned to you"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// ChampionAssignedData is rendered into the champion assignment email
type ChampionAssignedData struct {
	ChampionName     string
	FullName         string
	CurrentSituation string
	IdeaDescription  string
}

// RenderChampionAssigned renders the assignment email body with HTML escaping
func RenderChampionAssigned(data ChampionAssignedData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "champion_assigned.html", data); err != nil {
		return "", fmt.Errorf("failed to render champion email: %w", err)
	}
	return buf.String(), nil
}
