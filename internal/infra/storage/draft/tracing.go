package draft

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("github.com/manuelContrerasDev/enap-reservas-sub001/internal/infra/storage/draft")
