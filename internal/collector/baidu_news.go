package collector

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

const (
	baiduNewsBaseURL   = "https://news.baidu.com"
	baiduNewsSource    = "baidu-news"
	baiduNewsUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	baiduNewsTimeout   = 10 * time.Second

	// 焦点新闻列表、通用新闻条目、热点列表
	baiduNewsSelector = ".ulist.focuslistnews li, .news-item, .hotnews li"

	DefaultCount = 10
	MaxCount     = 50
)

// BaiduNewsFetcher 抓取百度新闻列表页；抓取失败或解析为空时返回示例数据
type BaiduNewsFetcher struct {
	// BaseURL 为空时使用 https://news.baidu.com
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Logger    *zap.Logger
	// Now 由调用方注入，便于测试；为空时使用 time.Now
	Now func() time.Time
}

func (b *BaiduNewsFetcher) Name() string {
	return "baidu_news"
}

// Execute 抓取 count 条 category 分类的新闻。
// 只有参数非法或内部异常才返回 *FetchError，网络问题一律转为示例数据。
func (b *BaiduNewsFetcher) Execute(p Params) (resp *Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = &FetchError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	count, err := normalizeCount(p.Count)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	category := normalizeCategory(p.Category)

	b.logger().Info("fetch baidu news", zap.Int("count", count), zap.String("category", category))

	data := b.fetchNews(count, category)

	return &Response{
		Success:   true,
		Data:      data,
		Message:   fmt.Sprintf("成功获取%d条新闻", len(data.Items)),
		Timestamp: isoTime(b.now()),
	}, nil
}

func normalizeCount(count int) (int, error) {
	switch {
	case count < 0:
		return 0, fmt.Errorf("count must be positive, got %d", count)
	case count == 0:
		return DefaultCount, nil
	case count > MaxCount:
		return MaxCount, nil
	}
	return count, nil
}

// fetchNews 只做一次请求，不重试
func (b *BaiduNewsFetcher) fetchNews(count int, category string) *NewsResult {
	log := b.logger()
	url := BuildURL(b.baseURL(), category)

	items, err := b.scrape(url, count)
	if err != nil {
		log.Warn("fetch baidu news failed, use fallback", zap.String("url", url), zap.Error(err))
		return b.fallback(count)
	}
	if len(items) == 0 {
		log.Warn("fetch baidu news got 0 items, use fallback", zap.String("url", url))
		return b.fallback(count)
	}

	log.Info("fetch baidu news done", zap.String("url", url), zap.Int("items", len(items)))
	return &NewsResult{
		Items:     items,
		Total:     len(items),
		Category:  category,
		Source:    baiduNewsSource,
		FetchTime: isoTime(b.now()),
	}
}

func (b *BaiduNewsFetcher) scrape(url string, count int) ([]NewsItem, error) {
	c := colly.NewCollector(
		colly.UserAgent(b.userAgent()),
		colly.DetectCharset(),
	)
	c.SetRequestTimeout(b.timeout())

	baseURL := b.baseURL()
	results := make([]NewsItem, 0, count)

	// 页面结构可能调整，此处基于当前的 DOM 结构做“尽力而为”的解析
	c.OnHTML(baiduNewsSelector, func(e *colly.HTMLElement) {
		if len(results) >= count {
			return
		}
		item, ok := parseCandidate(e.DOM, baseURL, b.now())
		if !ok {
			return
		}
		// Index 取候选元素的原始位置，被跳过的元素会留下空号
		item.Index = e.Index + 1
		results = append(results, item)
	})

	if err := c.Visit(url); err != nil {
		return nil, err
	}
	return results, nil
}

// parseCandidate 从单个候选元素中提取新闻；标题或链接为空时返回 false
func parseCandidate(s *goquery.Selection, baseURL string, now time.Time) (NewsItem, bool) {
	link := s.Find("a").First()
	title := strings.TrimSpace(link.Text())
	if title == "" {
		title = strings.TrimSpace(s.Find(".title").Text())
	}
	href, _ := link.Attr("href")
	href = strings.TrimSpace(href)
	if title == "" || href == "" {
		return NewsItem{}, false
	}
	title = cleanText(title)

	summary := cleanText(s.Find(".summary, .desc").Text())
	if summary == "" {
		summary = generateSummary(title)
	}
	timestamp := strings.TrimSpace(s.Find(".time, .date").Text())
	if timestamp == "" {
		timestamp = displayTime(now)
	}

	return NewsItem{
		Title:     title,
		Summary:   summary,
		URL:       resolveLink(baseURL, href),
		Timestamp: timestamp,
	}, true
}

func (b *BaiduNewsFetcher) fallback(count int) *NewsResult {
	r := FallbackNews(count, b.now())
	return &r
}

func (b *BaiduNewsFetcher) baseURL() string {
	if b.BaseURL != "" {
		return b.BaseURL
	}
	return baiduNewsBaseURL
}

func (b *BaiduNewsFetcher) userAgent() string {
	if b.UserAgent != "" {
		return b.UserAgent
	}
	return baiduNewsUserAgent
}

func (b *BaiduNewsFetcher) timeout() time.Duration {
	if b.Timeout > 0 {
		return b.Timeout
	}
	return baiduNewsTimeout
}

func (b *BaiduNewsFetcher) logger() *zap.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return zap.NewNop()
}

func (b *BaiduNewsFetcher) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}
