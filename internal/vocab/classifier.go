package vocab

import (
	"strings"

	"slate/internal/model"
)

// 关键词按优先级排列：工业类优先于农业类
var (
	industrialKeywords = []string{"trucking", "logistics", "shipping", "factory", "vibration"}
	agTechKeywords     = []string{"agri", "soil", "farm", "microbial"}
)

var vocabularies = map[model.Domain]model.Vocabulary{
	model.DomainGeneral: {
		Unit:      "growth",
		Metric:    "ROI",
		Process:   "workflow",
		Mechanism: "strategic shift",
		Bleed:     "inefficiency",
		Visual:    "Modern office setting",
	},
	model.DomainIndustrial: {
		Unit:      "throughput",
		Metric:    "OEE",
		Process:   "asset uptime",
		Mechanism: "vibration sensors",
		Bleed:     "$50k/hr downtime loss",
		Visual:    "Factory floor with heavy machinery and industrial sensors",
	},
	model.DomainAgTech: {
		Unit:      "yield",
		Metric:    "input costs",
		Process:   "soil nutrient cycle",
		Mechanism: "Bacillus microbes",
		Bleed:     "microbial depletion leading to yield collapse",
		Visual:    "Lush farm fields with close-up of healthy soil structure",
	},
}

// Classify 根据原文关键词判断领域，并返回对应的词汇表
func Classify(text string) (model.Domain, model.Vocabulary) {
	lower := strings.ToLower(text)

	domain := model.DomainGeneral
	switch {
	case containsAny(lower, industrialKeywords):
		domain = model.DomainIndustrial
	case containsAny(lower, agTechKeywords):
		domain = model.DomainAgTech
	}

	return domain, vocabularies[domain]
}

// Lookup 按领域标签查找词汇表
func Lookup(domain model.Domain) (model.Vocabulary, bool) {
	v, ok := vocabularies[domain]
	return v, ok
}

// Domains 按分类优先级返回全部领域
func Domains() []model.Domain {
	return []model.Domain{model.DomainIndustrial, model.DomainAgTech, model.DomainGeneral}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
