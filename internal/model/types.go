package model

// RepurposeRequest 内容改写请求，同时也是客户端持久化的表单结构
type RepurposeRequest struct {
	SourceContent  string `json:"SOURCE_CONTENT"`  // 原始文稿，必填
	TargetAudience string `json:"TARGET_AUDIENCE"` // 目标受众
	BrandVoice     string `json:"BRAND_VOICE"`     // 品牌语气
	PrimaryGoal    string `json:"PRIMARY_GOAL"`    // 主要目标
}

// Domain 领域分类标签
type Domain string

const (
	DomainGeneral    Domain = "General Business"
	DomainIndustrial Domain = "Physical/Industrial"
	DomainAgTech     Domain = "Biological/AgTech"
)

// Vocabulary 领域词汇表，六个替换槽位
type Vocabulary struct {
	Unit      string `json:"unit"`      // 价值单位
	Metric    string `json:"metric"`    // 核心指标
	Process   string `json:"process"`   // 流程名称
	Mechanism string `json:"mechanism"` // 机制名称
	Bleed     string `json:"bleed"`     // 痛点描述
	Visual    string `json:"visual"`    // 画面描述
}

// Classified 分类后的请求，携带选中的领域和词汇表
type Classified struct {
	Request    RepurposeRequest `json:"request"`
	Domain     Domain           `json:"domain"`
	Vocabulary Vocabulary       `json:"vocabulary"`
}

// Analysis 简要分析
type Analysis struct {
	DomainDetected Domain `json:"domain_detected"`
	TheBleed       string `json:"the_bleed"`
	TheMechanism   string `json:"the_mechanism"`
	TheROI         string `json:"the_roi"`
}

// VideoScript 视频脚本
type VideoScript struct {
	HookVisual string `json:"hook_visual"`
	ScriptBody string `json:"script_body"`
}

// Bundle 完整的输出结果
type Bundle struct {
	Analysis      Analysis    `json:"analysis"`
	LinkedinPost  string      `json:"linkedin_post"`
	TwitterThread []string    `json:"twitter_thread"` // 固定5段，顺序有意义
	VideoScript   VideoScript `json:"video_script"`
}
