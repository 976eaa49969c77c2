package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bitfantasy/nimo-qms/internal/qms/report"
)

const defaultCacheTTL = 5 * time.Minute

// ReportService 报表服务：聚合引擎 + 按周期键缓存
type ReportService struct {
	engine   *report.Engine
	rdb      *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewReportService 创建报表服务。rdb 可为 nil，此时每次都现算。
func NewReportService(engine *report.Engine, rdb *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *ReportService {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &ReportService{
		engine:   engine,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func cacheKey(period report.Period) string {
	return fmt.Sprintf("qms:report:snapshot:%s", period)
}

// GetSnapshot 获取报表快照。refresh 为 true 时绕过缓存强制重算。
// 存在失败域的快照不写缓存，避免把残缺结果固化到TTL周期。
func (s *ReportService) GetSnapshot(ctx context.Context, period report.Period, refresh bool) (*report.Snapshot, error) {
	key := cacheKey(period)

	if s.rdb != nil && !refresh {
		if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var snap report.Snapshot
			if err := json.Unmarshal(cached, &snap); err == nil {
				return &snap, nil
			}
			// 缓存损坏，删掉现算
			s.logger.Warn("unreadable cached snapshot, recomputing", zap.String("key", key))
			s.rdb.Del(ctx, key)
		}
	}

	start := time.Now()
	snap, err := s.engine.ComputeSnapshot(ctx, period)
	if err != nil {
		return nil, err
	}
	s.logger.Info("snapshot computed",
		zap.String("period", string(period)),
		zap.Duration("took", time.Since(start)),
		zap.Strings("failed_domains", snap.FailedDomains))

	if s.rdb != nil && len(snap.FailedDomains) == 0 {
		if data, err := json.Marshal(snap); err == nil {
			if err := s.rdb.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("snapshot cache write failed", zap.Error(err))
			}
		}
	}

	return snap, nil
}

// Invalidate 清除某周期的缓存快照
func (s *ReportService) Invalidate(ctx context.Context, period report.Period) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, cacheKey(period)).Err()
}
