package bot

import (
	"schedule-bot/internal/models"
	"strings"
)

const parseModeMarkdownV2 = "MarkdownV2"

// Эмодзи-цифры для пар
var slotEmoji = map[models.Slot]string{
	models.SlotI:   "1️⃣",
	models.SlotII:  "2️⃣",
	models.SlotIII: "3️⃣",
	models.SlotIV:  "4️⃣",
}

const lecturerEmoji = "🧑‍🏫"

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "_", `\_`, "*", `\*`, "[", `\[`, "]", `\]`, "(", `\(`, ")", `\)`,
	"~", `\~`, "`", "\\`", ">", `\>`, "#", `\#`, "+", `\+`, "-", `\-`,
	"=", `\=`, "|", `\|`, "{", `\{`, "}", `\}`, ".", `\.`, "!", `\!`,
)

// внутри (...) ссылки экранируются только ) и \
var linkEscaper = strings.NewReplacer(`\`, `\\`, ")", `\)`)

func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

func renderMeeting(m models.Meeting) string {
	if m.Link == "" {
		return escapeMarkdown(m.Name)
	}
	return "[" + escapeMarkdown(m.Name) + "](" + linkEscaper.Replace(m.Link) + ")"
}

func renderSubject(v models.SubjectView) string {
	var sb strings.Builder
	sb.WriteString(slotEmoji[v.Slot])
	sb.WriteString(" ")
	sb.WriteString(escapeMarkdown(v.Title))
	for _, m := range v.Meetings {
		sb.WriteString("\n" + lecturerEmoji + " " + renderMeeting(m))
	}
	return sb.String()
}

// renderSubjects - по строке на предмет
func renderSubjects(views []models.SubjectView) string {
	var sb strings.Builder
	for _, v := range views {
		sb.WriteString(renderSubject(v))
		sb.WriteString("\n")
	}
	return sb.String()
}
