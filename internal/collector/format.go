package collector

import (
	"fmt"
	"strings"
)

// FormatOutput 将结果渲染为便于阅读的多行文本
func FormatOutput(r *NewsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n📰 今日头条新闻 (共%d条)\n", r.Total)
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")

	for i, item := range r.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Title)
		fmt.Fprintf(&b, "   📝 %s\n", item.Summary)
		fmt.Fprintf(&b, "   🔗 %s\n", item.URL)
		fmt.Fprintf(&b, "   🕒 %s\n\n", item.Timestamp)
	}

	if r.Note != "" {
		fmt.Fprintf(&b, "⚠️  %s\n", r.Note)
	}
	return b.String()
}
