package inline

import (
	"strings"

	"github.com/tsawler/notemark/model"
)

// Class names of a rendered dialogue line.
const (
	DialogueLineClass = "dialogue-line"
	BubbleClass       = "dialogue-bubble"
	SpeakerClass      = "dialogue-speaker"
	ReplicaClass      = "dialogue-replica"
)

// SideClass returns the placement class for a side.
func SideClass(s model.Side) string {
	return "dialogue-" + s.String()
}

// RenderDialogueLine renders one exchange with its palette inlined.
func RenderDialogueLine(dl model.DialogueLine) string {
	var sb strings.Builder
	sb.WriteString(`<div class="` + DialogueLineClass + ` ` + SideClass(dl.Side) + `">`)
	sb.WriteString(`<div class="` + BubbleClass + `" style="background-color:`)
	sb.WriteString(dl.Palette.Background.Hex())
	sb.WriteString(`;border-color:`)
	sb.WriteString(dl.Palette.Border.Hex())
	sb.WriteString(`">`)
	sb.WriteString(`<span class="` + SpeakerClass + `" style="color:`)
	sb.WriteString(dl.Palette.Label.Hex())
	sb.WriteString(`">`)
	sb.WriteString(dl.Speaker)
	sb.WriteString(`</span>`)
	sb.WriteString(`<span class="` + ReplicaClass + `">`)
	sb.WriteString(dl.Replica)
	sb.WriteString(`</span></div></div>`)
	return sb.String()
}
