package scheduler

import (
	"github.com/LJTian/NewsFetcher/internal/collector"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sink 接收每一轮抓取的结果，例如打印到终端
type Sink func(resp *collector.Response)

type Scheduler struct {
	cron    *cron.Cron
	fetcher collector.Fetcher
	params  collector.Params
	sink    Sink
	log     *zap.Logger
}

// New 按 cron 表达式周期性执行 fetcher；只在内存中传递结果，不做持久化
func New(spec string, fetcher collector.Fetcher, params collector.Params, sink Sink, log *zap.Logger) (*Scheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := cron.New()

	s := &Scheduler{
		cron:    c,
		fetcher: fetcher,
		params:  params,
		sink:    sink,
		log:     log,
	}

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop 停止调度并等待正在执行的任务结束
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce 对外暴露的单次执行入口，方便手动触发采集
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	name := s.fetcher.Name()
	s.log.Info("start collect job", zap.String("fetcher", name))

	resp, err := s.fetcher.Execute(s.params)
	if err != nil {
		s.log.Error("collect job failed", zap.String("fetcher", name), zap.Error(err))
		return
	}

	s.log.Info("collect job done",
		zap.String("fetcher", name),
		zap.String("source", resp.Data.Source),
		zap.Int("items", resp.Data.Total),
	)
	if s.sink != nil {
		s.sink(resp)
	}
}
