package collector

import (
	"fmt"
	"time"
)

// NewsItem 单条新闻，Index 为在候选元素中的原始位置（从 1 开始）
type NewsItem struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	URL       string `json:"url"`
	Timestamp string `json:"timestamp"`
	Index     int    `json:"index"`
}

// NewsResult 一次抓取的结果；Note 仅在使用示例数据时出现
type NewsResult struct {
	Items     []NewsItem `json:"news"`
	Total     int        `json:"total"`
	Category  string     `json:"category"`
	Source    string     `json:"source"`
	FetchTime string     `json:"fetchTime"`
	Note      string     `json:"note,omitempty"`
}

// Params 抓取参数，零值表示使用默认值
type Params struct {
	Count    int    `json:"count" form:"count"`
	Category string `json:"category" form:"category"`
}

// Response 成功时返回给调用方的信封
type Response struct {
	Success   bool        `json:"success"`
	Data      *NewsResult `json:"data"`
	Message   string      `json:"message"`
	Timestamp string      `json:"timestamp"`
}

// FetchError 是 Execute 唯一对外暴露的错误类型；网络错误不会走到这里
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("新闻获取失败: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher 抽象一个新闻源
type Fetcher interface {
	Name() string
	Execute(p Params) (*Response, error)
}

const (
	isoLayout     = "2006-01-02T15:04:05.000Z07:00"
	displayLayout = "2006/1/2 15:04:05"
)

// 东八区，用于展示时间
var locEast8 *time.Location

func init() {
	locEast8, _ = time.LoadLocation("Asia/Shanghai")
	if locEast8 == nil {
		locEast8 = time.FixedZone("CST", 8*3600)
	}
}

func isoTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

func displayTime(t time.Time) string {
	return t.In(locEast8).Format(displayLayout)
}
