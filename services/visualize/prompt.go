package visualize

import (
	"fmt"
	"strings"

	"shreeji/models"
)

// Scene descriptions per gallery style.
var stylePrompts = map[models.GalleryStyle]string{
	models.StyleAlbum:     "Show the photo inside an open, elegant photo album on a clean tabletop.",
	models.StyleAcrylic:   "Show the photo as a glossy acrylic print mounted on a modern, well-lit wall.",
	models.StyleWallFrame: "Show the photo in a stylish frame hanging on a decorated wall in a room.",
}

// buildPrompt constructs the model prompt for a preview request.
func buildPrompt(style models.GalleryStyle, size string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a realistic, high-quality image showing the provided photo displayed as a '%s' print.", style)
	if size != "" {
		fmt.Fprintf(&sb, " The print size is approximately %s.", size)
	}
	sb.WriteString(" ")
	sb.WriteString(stylePrompts[style])
	sb.WriteString(" The scene should be well-composed and aesthetically pleasing, highlighting the product.")
	return sb.String()
}
