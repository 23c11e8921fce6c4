package storage

import (
	"time"

	"github.com/calcyard/mathcalc/internal/mathparse"
	"github.com/calcyard/mathcalc/internal/metrics"
)

// evalExpressions drains the queue and evaluates each pending expression
// against the shared registry, persisting the outcome.
func (s *storage) evalExpressions() {
	for {
		pending := s.exprQueue.DequeueWait()
		metrics.QueueDepth.Set(float64(s.exprQueue.Len()))

		start := time.Now()
		s.mu.RLock()
		result, err := s.eval.EvaluatePostfix(pending.postfix)
		s.mu.RUnlock()
		metrics.EvaluationDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			metrics.EvaluationsTotal.WithLabelValues("error").Inc()
			updateExpressionState(s.db, has_error, err.Error(), pending.id)
			continue
		}
		metrics.EvaluationsTotal.WithLabelValues("success").Inc()
		updateExpressionState(s.db, ok, mathparse.FormatResult(result), pending.id)
	}
}
