package collector

import "time"

const (
	fallbackSource   = "fallback-data"
	fallbackCategory = "示例数据"
	fallbackNote     = "由于网络原因，当前显示为示例数据"
)

var fallbackNews = []struct {
	Title   string
	Summary string
}{
	{"科技发展推动产业升级", "最新科技动态显示，人工智能、量子计算等领域取得重大突破。科技创新为传统产业数字化转型提供强大支撑，新技术应用场景不断拓展，为高质量发展注入新动能。"},
	{"经济形势稳中向好", "最新经济数据显示，各项指标保持稳定增长态势。消费市场持续回暖，投资结构不断优化，外贸保持韧性，为全年经济社会发展目标实现奠定坚实基础。"},
	{"教育改革深入推进", "教育部最新政策发布，全面推进素质教育发展。基础教育均衡发展持续推进，高等教育内涵建设不断加强，职业教育产教融合深入实施，教育公平质量同步提升。"},
	{"医疗健康新突破", "医学研究领域取得重要进展，新型治疗技术为患者带来新希望。精准医疗、基因治疗等前沿技术不断突破，公共卫生体系持续完善，全民健康水平稳步提升。"},
	{"环保政策持续发力", "绿色发展理念深入人心，各地环保措施效果显著。碳达峰碳中和工作稳步推进，污染防治攻坚战取得阶段性成果，生态环境质量持续改善，美丽中国建设迈出新步伐。"},
	{"数字经济蓬勃发展", "数字技术与实体经济深度融合，新业态新模式不断涌现。5G、大数据、云计算等技术广泛应用，产业数字化转型加速推进，数字中国建设取得显著成效。"},
	{"文化产业迎来新机遇", "文化创意产业快速发展，传统文化焕发新的生机。文化产业与科技、旅游等领域深度融合，优秀文化产品供给不断丰富，文化软实力显著增强。"},
	{"农业现代化加速推进", "智慧农业技术应用广泛，粮食安全保障能力持续提升。农业机械化水平不断提高，绿色生产方式加快推广，农民增收渠道持续拓宽，乡村振兴战略深入实施。"},
	{"交通基础设施完善", "交通运输网络不断优化，便民惠民措施成效显著。高速铁路网持续完善，智慧交通建设加快推进，物流效率显著提升，综合立体交通体系加速形成。"},
	{"社会保障体系健全", "民生保障水平稳步提高，公共服务覆盖面持续扩大。养老、医疗、失业等保险制度不断完善，社会救助体系更加健全，人民群众获得感幸福感安全感显著增强。"},
}

// FallbackNews 返回前 count 条示例新闻（最多 10 条），时间戳取 now
func FallbackNews(count int, now time.Time) NewsResult {
	if count < 0 {
		count = 0
	}
	if count > len(fallbackNews) {
		count = len(fallbackNews)
	}

	ts := displayTime(now)
	items := make([]NewsItem, 0, count)
	for i, n := range fallbackNews[:count] {
		items = append(items, NewsItem{
			Title:     n.Title,
			Summary:   n.Summary,
			URL:       "https://www.baidu.com/s?wd=" + n.Title,
			Timestamp: ts,
			Index:     i + 1,
		})
	}

	return NewsResult{
		Items:     items,
		Total:     len(items),
		Category:  fallbackCategory,
		Source:    fallbackSource,
		FetchTime: isoTime(now),
		Note:      fallbackNote,
	}
}
