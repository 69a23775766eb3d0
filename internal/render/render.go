package render

import (
	"strings"

	"slate/internal/model"
)

// Render 用词汇表和请求字段填充固定模板，生成完整结果。
// 纯函数：相同输入总是得到相同输出。
func Render(c model.Classified) *model.Bundle {
	r := newReplacer(c)

	thread := make([]string, 0, ThreadLength)
	for _, tpl := range threadTemplates {
		thread = append(thread, r.Replace(tpl))
	}

	return &model.Bundle{
		Analysis: model.Analysis{
			DomainDetected: c.Domain,
			TheBleed:       c.Vocabulary.Bleed,
			TheMechanism:   c.Vocabulary.Mechanism,
			TheROI:         r.Replace(roiTemplate),
		},
		LinkedinPost:  r.Replace(linkedinTemplate),
		TwitterThread: thread,
		VideoScript: model.VideoScript{
			HookVisual: r.Replace(hookVisualTemplate),
			ScriptBody: r.Replace(scriptBodyTemplate),
		},
	}
}

// MainSubject 取原文按空格切分后的前五个词，末尾加省略号
func MainSubject(source string) string {
	words := strings.Split(source, " ")
	if len(words) > subjectWords {
		words = words[:subjectWords]
	}
	return strings.Join(words, " ") + "..."
}

// lastWord 返回按空格切分后的最后一个词
func lastWord(s string) string {
	words := strings.Split(s, " ")
	return words[len(words)-1]
}

// newReplacer 单次扫描替换，替换进去的用户文本不会被再次展开
func newReplacer(c model.Classified) *strings.Replacer {
	v := c.Vocabulary
	return strings.NewReplacer(
		"{domain}", string(c.Domain),
		"{audience}", c.Request.TargetAudience,
		"{voice}", c.Request.BrandVoice,
		"{subject}", MainSubject(c.Request.SourceContent),
		"{unit_upper}", strings.ToUpper(v.Unit),
		"{unit}", v.Unit,
		"{metric}", v.Metric,
		"{process}", v.Process,
		"{mechanism}", v.Mechanism,
		"{bleed_word}", strings.ToUpper(lastWord(v.Bleed)),
		"{bleed}", v.Bleed,
		"{visual}", v.Visual,
	)
}
