package render

// 模板占位符：{domain} {audience} {voice} {subject} 以及词汇表六个槽位
const (
	roiTemplate = "30% increase in {unit} and 15% reduction in {metric}"

	linkedinTemplate = "[THE COST OF INACTION]\n\n" +
		"Every hour you wait, you are bleeding {bleed}. \n\n" +
		"Most {audience} treat this as a \"cost of doing business.\" It isn't. It's an engineering failure in your {process}.\n\n" +
		"The reason? You're ignoring the technical mechanism behind {subject}.\n\n" +
		"Here is how we fixed it using {mechanism}:\n\n" +
		"1. Stop the bleed. Identify the specific point where {unit} drops.\n" +
		"2. Deploy the mechanism. {mechanism} provides the data layer most operators miss.\n" +
		"3. Capture the ROI. We're seeing a 30% jump in {unit} across the board.\n\n" +
		"Are you managing by intuition, or are you managing by the technical reality of your {domain} operation? Let's discuss."

	hookVisualTemplate = "[Visual: {visual}. Text overlay: \"STOP THE {bleed_word}\"]"

	scriptBodyTemplate = "\"You're losing $ every hour your {process} is unmonitored. That's not a guess—it's the bleed.\"\n\n" +
		"\"For {audience}, the problem isn't effort. It's the invisible depletion of {unit}.\"\n\n" +
		"\"The solution? {mechanism}. It's the mechanism that turns a $50k loss into a 30% ROI.\"\n\n" +
		"\"Stop paying the cost of inaction. Start deploying the data.\"\n\n" +
		"[Visual: Screen fades to black: 30% INCREASE IN {unit_upper}]"
)

// threadTemplates 顺序固定：开头钩子、三段正文、结尾号召
var threadTemplates = [ThreadLength]string{
	"Your {domain} operation is hemorrhaging $ and you might not even see it. \n\n" +
		"I just broke down why {subject} is the key to stopping the bleed. \n\n" +
		"A technical deep-dive: 🧵",
	"1/ The Bleed: \n\n" +
		"Most operators lose the equivalent of {bleed} because they lack real-time visibility into {process}. \n\n" +
		"You can't manage what you can't measure.",
	"2/ The Fact-Stack: \n" +
		"- 15% reduction in {metric}.\n" +
		"- 30% increase in {unit}.\n\n" +
		"These aren't \"goals.\" They are the baseline outcomes of deploying {mechanism}.",
	"3/ The Mechanism: \n\n" +
		"By implementing {mechanism}, you move from reactive maintenance to proactive {unit} optimization. \n\n" +
		"It's the difference between a crisis and a predictable P&L.",
	"Stopping the bleed is an engineering challenge, not a management one. \n\n" +
		"Follow for more tactical {voice} insights for {domain} leaders. 🛡️",
}

// ThreadLength 推文串固定段数
const ThreadLength = 5

// ThreadRoles 推文串各段的角色
var ThreadRoles = [ThreadLength]string{"hook", "bleed", "fact-stack", "mechanism", "cta"}

// subjectWords 主题片段取原文前几个词
const subjectWords = 5
