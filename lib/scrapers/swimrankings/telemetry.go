package swimrankings

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("swimrankings-backend/lib/scrapers/swimrankings")
