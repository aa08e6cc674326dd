package tools

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/energywiz/internal/energy"
	"github.com/HendryAvila/energywiz/internal/profile"
	"github.com/HendryAvila/energywiz/internal/wizard"
)

// renderProgress lists every step with a status marker.
func renderProgress(current wizard.Step) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Step %d of %d (%.0f%%)\n\n", current, wizard.LastStep, wizard.Progress(current)*100)
	for _, def := range wizard.Steps() {
		marker := "⬜"
		switch {
		case def.Step < current:
			marker = "✅"
		case def.Step == current:
			marker = "🔄"
		}
		fmt.Fprintf(&b, "  %s %d. %s\n", marker, def.Step, def.Title)
	}
	return b.String()
}

// renderPrompt tells the host what to ask for the current step and how
// to submit it.
func renderPrompt(state *wizard.State) string {
	step := state.Step()
	if state.Complete() {
		return renderResults(state.Answers(), state.Result())
	}

	def, _ := wizard.Lookup(step)
	var b strings.Builder
	fmt.Fprintf(&b, "## Step %d: %s\n\n%s\n\n", def.Step, def.Title, def.Question)

	if len(def.Choices) > 0 {
		quoted := make([]string, len(def.Choices))
		for i, c := range def.Choices {
			quoted[i] = "`" + c + "`"
		}
		fmt.Fprintf(&b, "Choices: %s\n\n", strings.Join(quoted, " | "))
		fmt.Fprintf(&b, "Call `energy_wizard_submit` with `step: %d` and `choice` set to the user's selection.", def.Step)
		return b.String()
	}

	args := make([]string, len(def.Fields))
	for i, f := range def.Fields {
		args[i] = "`" + f + "`"
	}
	fmt.Fprintf(&b, "Call `energy_wizard_submit` with `step: %d`, %s once the user confirms.", def.Step, strings.Join(args, " and "))
	return b.String()
}

// renderResults is the final summary plus the energy breakdown.
func renderResults(a profile.Answers, b energy.Breakdown) string {
	var sb strings.Builder
	sb.WriteString("# 🎉 Calculation Complete!\n\n")
	fmt.Fprintf(&sb, "**Daily energy consumption:** %s\n\n", b.FormatTotal())

	sb.WriteString("## Summary\n\n")
	sb.WriteString(renderAnswers(a))

	sb.WriteString("\n## Energy Breakdown\n\n")
	sb.WriteString(renderBreakdown(b))
	return sb.String()
}

// renderBreakdown is the per-category table with the total.
func renderBreakdown(b energy.Breakdown) string {
	var sb strings.Builder
	sb.WriteString("| Category | Daily use |\n")
	sb.WriteString("|----------|-----------|\n")
	fmt.Fprintf(&sb, "| 🏠 Base | %s |\n", energy.FormatComponent(b.Base))
	fmt.Fprintf(&sb, "| ❄️ AC | %s |\n", energy.FormatComponent(b.AC))
	fmt.Fprintf(&sb, "| 🧊 Fridge | %s |\n", energy.FormatComponent(b.Fridge))
	fmt.Fprintf(&sb, "| 🧺 Washing | %s |\n", energy.FormatComponent(b.Washing))
	fmt.Fprintf(&sb, "| **Total** | **%s** |\n", b.FormatTotal())
	return sb.String()
}

// renderAnswers lists the collected answers, N/A for anything missing.
func renderAnswers(a profile.Answers) string {
	age := "N/A"
	if a.Age > 0 {
		age = fmt.Sprintf("%d years", a.Age)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "- **Name:** %s\n", orNA(a.Name))
	fmt.Fprintf(&b, "- **Age:** %s\n", age)
	fmt.Fprintf(&b, "- **Location:** %s, %s\n", orNA(a.Area), orNA(a.City))
	fmt.Fprintf(&b, "- **Housing:** %s\n", orNA(a.HousingType.Label()))
	fmt.Fprintf(&b, "- **Configuration:** %s\n", orNA(a.Facility.Label()))
	fmt.Fprintf(&b, "- **Air Conditioning:** %s\n", renderFlag(a.AC))
	fmt.Fprintf(&b, "- **Refrigerator:** %s\n", renderFlag(a.Fridge))
	fmt.Fprintf(&b, "- **Washing Machine:** %s\n", renderFlag(a.WashingMachine))
	return b.String()
}

func renderFlag(flag *bool) string {
	switch {
	case flag == nil:
		return "N/A"
	case *flag:
		return "✅ Yes"
	}
	return "❌ No"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
