package dossier

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"show-scheduler/models"
)

// Generator writes one markdown dossier per guest for the downstream document
// build. Files that already exist are left untouched, so hand edits and
// earlier generations survive reruns.
type Generator struct {
	dir string
	log zerolog.Logger
}

func NewGenerator(dir string, log zerolog.Logger) *Generator {
	return &Generator{dir: dir, log: log}
}

// Generate emits missing dossiers. The file name derives deterministically
// from the guest's display name.
func (g *Generator) Generate(guests []models.Guest, availability map[string][]time.Time) error {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return err
	}

	for _, guest := range guests {
		path := filepath.Join(g.dir, slug.Make(guest.Name)+".md")
		if _, err := os.Stat(path); err == nil {
			g.log.Debug().Str("guest", guest.Name).Msg("dossier exists, skipping")
			continue
		}
		if err := os.WriteFile(path, []byte(render(guest, availability[guest.Name])), 0o644); err != nil {
			return fmt.Errorf("write dossier for %s: %w", guest.Name, err)
		}
		g.log.Info().Str("guest", guest.Name).Str("path", path).Msg("dossier written")
	}
	return nil
}

func render(guest models.Guest, dates []time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", guest.Name)
	fmt.Fprintf(&b, "- Email: %s\n", guest.Email)
	fmt.Fprintf(&b, "- Department: %s\n", guest.Department)
	fmt.Fprintf(&b, "- Advisor: %s\n", guest.Advisor)
	fmt.Fprintf(&b, "- Degree: %s\n", guest.Degree)
	if !guest.SignedUpAt.IsZero() {
		fmt.Fprintf(&b, "- Signed up: %s\n", guest.SignedUpAt.Format(models.DateFormat))
	}

	b.WriteString("\n## Research\n\n")
	if guest.Description != "" {
		b.WriteString(guest.Description)
		b.WriteString("\n")
	}

	b.WriteString("\n## Availability\n\n")
	if len(dates) == 0 {
		b.WriteString("No parseable availability provided.\n")
	}
	for _, date := range dates {
		fmt.Fprintf(&b, "- %s\n", date.Format(models.DateFormat))
	}
	return b.String()
}
