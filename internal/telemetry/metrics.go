package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "cookmind"

// Instruments 預先建立的 OTel 指標
type Instruments struct {
	ScoreCount        metric.Int64Counter
	ScoreValue        metric.Int64Histogram
	SubstitutionCount metric.Int64Counter
	SubstitutionMiss  metric.Int64Counter
}

// NewInstruments 從全域 MeterProvider 建立指標
// 未安裝 SDK 時全域 provider 不記錄任何資料。
func NewInstruments() *Instruments {
	return newInstrumentsFromMeter(otel.Meter(meterName))
}

// NoopInstruments 不記錄任何資料的指標，供測試使用
func NoopInstruments() *Instruments {
	return newInstrumentsFromMeter(noop.NewMeterProvider().Meter(meterName))
}

// NewInstrumentsFromProvider 從指定的 provider 建立指標
func NewInstrumentsFromProvider(provider metric.MeterProvider) *Instruments {
	return newInstrumentsFromMeter(provider.Meter(meterName))
}

func newInstrumentsFromMeter(meter metric.Meter) *Instruments {
	// 建立失敗時 OTel 仍回傳 noop 指標
	scoreCount, _ := meter.Int64Counter("cookmind.match.score.count",
		metric.WithDescription("Total number of recipe scores computed"),
	)
	scoreValue, _ := meter.Int64Histogram("cookmind.match.score.value",
		metric.WithDescription("Distribution of computed match scores"),
		metric.WithUnit("%"),
	)
	substitutionCount, _ := meter.Int64Counter("cookmind.substitution.lookup.count",
		metric.WithDescription("Total number of substitution lookups"),
	)
	substitutionMiss, _ := meter.Int64Counter("cookmind.substitution.miss.count",
		metric.WithDescription("Substitution lookups without a table entry"),
	)

	return &Instruments{
		ScoreCount:        scoreCount,
		ScoreValue:        scoreValue,
		SubstitutionCount: substitutionCount,
		SubstitutionMiss:  substitutionMiss,
	}
}

// RecordScore 記錄一次分數計算與分數值
func (i *Instruments) RecordScore(ctx context.Context, operation string, score int) {
	attrs := metric.WithAttributes(attribute.String("operation", operation))
	i.ScoreCount.Add(ctx, 1, attrs)
	i.ScoreValue.Record(ctx, int64(score), attrs)
}

// RecordSubstitution 記錄一次替代查詢，查無時另計 miss
func (i *Instruments) RecordSubstitution(ctx context.Context, found bool) {
	i.SubstitutionCount.Add(ctx, 1)
	if !found {
		i.SubstitutionMiss.Add(ctx, 1)
	}
}
