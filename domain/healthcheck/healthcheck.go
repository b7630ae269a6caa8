package healthcheck

import (
	"github.com/mintbay/marketapi/base/ctx"
)

// HealthCheckUsecase reports whether the service and its backing stores are usable
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo probes the data stores behind the service
type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
}
