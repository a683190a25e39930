package scene

import (
	"strings"
	"time"

	"github.com/philipparndt/gofolio/pkg/content"
	"github.com/philipparndt/gofolio/pkg/motion"
)

// Home page reveal timing
const (
	TitleInterval = 80 * time.Millisecond
	BioInterval   = 40 * time.Millisecond
	ContactDelay  = 300 * time.Millisecond
)

// Home types the profile title, then the bio, and shows the links after a short pause
type Home struct {
	Profile  content.Profile
	Sequence motion.Sequence
}

// NewHome builds the reveal sequence for p
func NewHome(p content.Profile) Home {
	return Home{
		Profile: p,
		Sequence: motion.Sequence{Stages: []motion.Stage{
			{Writer: motion.NewTypewriter(p.Title, TitleInterval)},
			{Writer: motion.NewTypewriter(p.Bio, BioInterval), Pause: ContactDelay},
		}},
	}
}

// Title returns the revealed title after elapsed
func (h Home) Title(elapsed time.Duration) string {
	return h.Sequence.Visible(elapsed)[0]
}

// Bio returns the revealed bio after elapsed
func (h Home) Bio(elapsed time.Duration) string {
	return h.Sequence.Visible(elapsed)[1]
}

// TitleDone reports whether the title is complete, which is when navigation appears
func (h Home) TitleDone(elapsed time.Duration) bool {
	return h.Sequence.Stages[0].Writer.Done(elapsed)
}

// ContactVisible reports whether the links should be shown
func (h Home) ContactVisible(elapsed time.Duration) bool {
	return h.Sequence.Done(elapsed)
}

// TitleSpans marks the first name inside the title
func (h Home) TitleSpans() []motion.Span {
	first, _, _ := strings.Cut(strings.TrimSpace(h.Profile.Name), " ")
	return motion.HighlightSpans(h.Profile.Title, []string{first})
}

// BioSpans marks the profile highlights inside the bio
func (h Home) BioSpans() []motion.Span {
	return motion.HighlightSpans(h.Profile.Bio, h.Profile.Highlights)
}
