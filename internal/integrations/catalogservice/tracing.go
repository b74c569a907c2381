package catalogservice

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("github.com/manuelContrerasDev/enap-reservas-sub001/internal/integrations/catalogservice")
