package dashboard

import "resolucity/internal/domain/dashboard"

type seriesOutput struct {
	Body dashboard.Series
}
