package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.screen == screenLanding {
		return m.renderLanding()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderForm(), m.renderOutputPane())

	if m.alert != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body,
			m.styles.Alert.Render(m.alert+"\n\n"+m.styles.Muted.Render("press enter to dismiss")))
	}
	if m.toastVisible {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.styles.Toast.Render("✓ Copied to clipboard"))
	}
	return body
}

func (m Model) renderLanding() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("⚡ SLATE") + "\n\n")
	sb.WriteString(m.styles.Accent.Render("NOW POWERED BY INVESTIGATIVE JOURNALIST AI") + "\n\n")
	sb.WriteString(m.styles.Title.Render("Transform Raw Transcripts into Authority.") + "\n\n")
	sb.WriteString(m.styles.Muted.Render("The repo-first engine for high-ticket B2B operators. Turn 1 hour of raw conversation into 30 days of high-authority social assets.") + "\n\n")

	features := []struct{ title, desc string }{
		{"Domain Intelligence", "Pivots vocabulary from SaaS to Manufacturing instantly using detected keyword mapping."},
		{"Investigative Extraction", "Identifies \"The Bleed\" and \"The Mechanism\" to ensure your content is grounded in economic reality."},
		{"Anti-Templating", "Strict constraints prevent generic business advice. Every output is uniquely practitioner-focused."},
	}
	for _, f := range features {
		sb.WriteString(m.styles.Label.Render(f.title) + "\n")
		sb.WriteString(m.styles.Muted.Render(f.desc) + "\n\n")
	}

	sb.WriteString(m.styles.Button.Render("Try Out for Free  →") + "  " + m.styles.Muted.Render("enter to start · q to quit"))
	return m.styles.Pane.Render(sb.String())
}

func (m Model) renderForm() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("⚡ SLATE REPURPOSE") + "\n\n")

	labels := [fieldCount]string{"SOURCE CONTENT", "TARGET AUDIENCE", "BRAND VOICE", "PRIMARY GOAL"}
	for i, label := range labels {
		style := m.styles.Label
		if i == m.focus {
			style = m.styles.Accent
		}
		sb.WriteString(style.Render(label) + "\n")
		if i == fieldSource {
			sb.WriteString(m.source.View())
		} else {
			sb.WriteString(m.inputs[i-1].View())
		}
		sb.WriteString("\n\n")
	}

	switch {
	case m.phase == phaseLoading:
		sb.WriteString(m.styles.Disabled.Render(m.spinner.View() + " Forging Content..."))
	case !m.canGenerate():
		sb.WriteString(m.styles.Disabled.Render("➤ Generate Assets"))
	default:
		sb.WriteString(m.styles.Button.Render("➤ Generate Assets"))
	}

	help := make([]string, 0, len(keys.dashboardHelp()))
	for _, b := range keys.dashboardHelp() {
		help = append(help, b.Help().Key+" "+b.Help().Desc)
	}
	sb.WriteString("\n\n" + m.styles.Muted.Render(strings.Join(help, " · ")))

	return m.styles.Pane.Render(sb.String())
}

func (m Model) renderOutputPane() string {
	switch {
	case m.output == nil && m.phase == phaseLoading:
		return m.styles.Pane.Render(m.spinner.View() + " Forging Content...")
	case m.output == nil:
		return m.styles.Pane.Render(m.styles.Muted.Italic(true).Render(
			"Configure your inputs and hit generate to forge high-leverage assets."))
	case m.phase == phaseLoading:
		return m.styles.Pane.Render(m.styles.Muted.Render(m.viewport.View()))
	}
	return m.styles.Pane.Render(m.viewport.View())
}

// renderOutput 渲染结果的四个部分
func (m Model) renderOutput() string {
	out := m.output
	card := m.styles.Card.Width(max(m.viewport.Width-4, 16))
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Strategic Briefing") + "\n")
	sb.WriteString(m.styles.Bleed.Render("THE BLEED") + "      " + orDefault(out.Analysis.TheBleed, "Analyzing inefficiency...") + "\n")
	sb.WriteString(m.styles.Mech.Render("THE MECHANISM") + "  " + orDefault(out.Analysis.TheMechanism, "Detecting solution...") + "\n")
	sb.WriteString(m.styles.ROI.Render("THE ROI") + "        " + orDefault(out.Analysis.TheROI, "Calculating impact...") + "\n")
	if out.Analysis.DomainDetected != "" {
		sb.WriteString(m.styles.Muted.Render("DOMAIN: "+strings.ToUpper(string(out.Analysis.DomainDetected))) + "\n")
	}

	sb.WriteString("\n" + m.styles.Accent.Render("LinkedIn Authority Post") + m.styles.Muted.Render("  (ctrl+p copy)") + "\n")
	sb.WriteString(card.Render(out.LinkedinPost) + "\n")

	sb.WriteString("\n" + m.styles.Title.Render("X (Twitter) Thread") + m.styles.Muted.Render("  (ctrl+t copy)") + "\n")
	for i, tweet := range out.TwitterThread {
		sb.WriteString(m.styles.Label.Render(fmt.Sprintf("%d", i+1)) + "\n")
		sb.WriteString(card.Render(tweet) + "\n")
	}

	sb.WriteString("\n" + m.styles.Bleed.Render("60s Video Script") + m.styles.Muted.Render("  (ctrl+r copy)") + "\n")
	sb.WriteString(m.styles.Label.Render("HOOK VISUAL") + "\n")
	sb.WriteString(m.styles.Muted.Italic(true).Render(out.VideoScript.HookVisual) + "\n\n")
	sb.WriteString(card.Italic(true).Render(out.VideoScript.ScriptBody) + "\n")

	return sb.String()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
