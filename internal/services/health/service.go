package health

import "context"

// Pinger checks upstream reachability.
type Pinger interface {
	Health(ctx context.Context) error
}

// Service encapsulates health-related checks.
type Service struct {
	upstream Pinger
}

// NewService constructs a new health service.
func NewService(upstream Pinger) *Service {
	return &Service{upstream: upstream}
}

// Status reports gateway liveness and whether the analyzer service answers.
func (s *Service) Status(ctx context.Context) map[string]any {
	analyzerUp := false
	if s.upstream != nil {
		analyzerUp = s.upstream.Health(ctx) == nil
	}
	return map[string]any{
		"ok":          true,
		"analyzer_up": analyzerUp,
	}
}
