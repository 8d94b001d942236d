package router

import (
	"fmt"
	"strings"

	"github.com/studyping/studyping/pkg/domain"
)

// RenderOutline formats a roadmap outline as a chat message, sections in
// the order the content service returned them
func RenderOutline(outline *domain.Outline) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Tu Roadmap: %s\n", outline.Topic)

	for _, section := range outline.Sections {
		fmt.Fprintf(&sb, "\n🔹 %s\n", section.Name)
		for _, item := range section.Items {
			fmt.Fprintf(&sb, "   • %s\n", item)
		}
	}

	sb.WriteString("\n💬 ¡Pregúntame sobre cualquier tema del roadmap!")
	return sb.String()
}
