package collector

import "strings"

// DefaultCategory 对应百度新闻首页
const DefaultCategory = "综合"

// categoryPaths 分类名 -> 百度新闻路径
var categoryPaths = map[string]string{
	"国内":            "guonei",
	"国际":            "guoji",
	"科技":            "keji",
	"娱乐":            "yule",
	"体育":            "tiyu",
	"财经":            "caijing",
	DefaultCategory: "",
}

// categoryAliases 英文别名，方便命令行和 API 调用
var categoryAliases = map[string]string{
	"general":       DefaultCategory,
	"domestic":      "国内",
	"international": "国际",
	"tech":          "科技",
	"entertainment": "娱乐",
	"sports":        "体育",
	"finance":       "财经",
}

// Categories 返回已知的分类名（中文）
func Categories() []string {
	return []string{DefaultCategory, "国内", "国际", "科技", "娱乐", "体育", "财经"}
}

// normalizeCategory 空值取默认分类，英文别名换成中文；未知分类原样返回
func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	if label, ok := categoryAliases[strings.ToLower(category)]; ok {
		return label
	}
	return category
}

// BuildURL 根据分类拼接抓取地址，未知分类退回首页
func BuildURL(baseURL, category string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	code := categoryPaths[normalizeCategory(category)]
	if code == "" {
		return baseURL
	}
	return baseURL + "/" + code
}

// cleanText 合并连续空白并去掉首尾空白
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func generateSummary(title string) string {
	return `关于"` + title + `"的最新报道`
}

// resolveLink 不以 http 开头的链接视为站内相对地址
func resolveLink(baseURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return strings.TrimRight(baseURL, "/") + href
}
