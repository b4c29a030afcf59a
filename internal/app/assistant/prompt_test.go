package assistant

import (
	"strings"
	"testing"

	"github.com/samuel-avson/retrofolio/internal/infra/catalog"
)

func TestSystemContext_CoversCatalog(t *testing.T) {
	data := catalog.Default()
	sys := systemContext(data)

	wants := []string{
		data.Profile.Name,
		data.Profile.Email,
		data.Profile.Socials.GitHub,
		data.Projects[0].Title,
		data.Experience[0].Company,
		data.Education[0].School,
		data.Awards[0],
	}
	for _, want := range wants {
		if !strings.Contains(sys, want) {
			t.Errorf("persona prompt missing %q", want)
		}
	}
}

func TestSystemContext_SkipsPlaceholderLinks(t *testing.T) {
	data := catalog.Default()
	sys := systemContext(data)

	// The last project's link is the "#" placeholder and must not
	// leak into the prompt as a url.
	if strings.Contains(sys, "Link: #") {
		t.Error("placeholder project link leaked into the prompt")
	}
}
